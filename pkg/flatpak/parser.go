// pkg/flatpak/parser.go
package flatpak

import (
	"strings"

	"github.com/orange-update/orange/pkg/core"
)

// ParseInstalled parses `flatpak list --app`: Name, Application ID, Version, ...
func ParseInstalled(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, cols := range rows(out, 3) {
		packages = core.Collect(packages, core.Package{
			Name:    cols[0],
			AppID:   cols[1],
			Version: cols[2],
			Manager: core.KindFlatpak,
		})
	}
	return packages
}

// ParseUpgradable parses `flatpak remote-ls --updates`: Name, Application ID[, Version]
func ParseUpgradable(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, cols := range rows(out, 2) {
		pkg := core.Package{
			Name:    cols[0],
			AppID:   cols[1],
			Manager: core.KindFlatpak,
		}
		if len(cols) > 2 {
			pkg.NewVersion = cols[2]
		}
		packages = core.Collect(packages, pkg)
	}
	return packages
}

// ParseSearch parses `flatpak search`: Name, Description, Application ID, Version, ...
func ParseSearch(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, cols := range rows(out, 3) {
		pkg := core.Package{
			Name:        cols[0],
			Description: cols[1],
			AppID:       cols[2],
			Manager:     core.KindFlatpak,
		}
		if len(cols) > 3 {
			pkg.Version = cols[3]
		}
		packages = core.Collect(packages, pkg)
	}
	return packages
}

// rows splits tab-delimited output into trimmed columns, skipping blank
// lines, the optional header row and rows with fewer than min columns
func rows(out string, min int) [][]string {
	var result [][]string
	for _, line := range core.Lines(out) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < min {
			continue
		}
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		if isHeader(cols) {
			continue
		}
		result = append(result, cols)
	}
	return result
}

func isHeader(cols []string) bool {
	return cols[0] == headerName && (cols[1] == headerApp || cols[1] == headerDesc)
}
