// pkg/snap/parser.go
package snap

import (
	"strings"

	"github.com/orange-update/orange/pkg/core"
)

// ParseInstalled parses `snap list`: Name Version Rev Tracking Publisher Notes
func ParseInstalled(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, cols := range rows(out) {
		packages = core.Collect(packages, core.Package{
			Name:    cols[0],
			Version: cols[1],
			Manager: core.KindSnap,
		})
	}
	return packages
}

// ParseUpgradable parses `snap refresh --list`: Name Version Rev Size Publisher Notes.
// The Version column holds the version the snap would refresh to.
func ParseUpgradable(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, cols := range rows(out) {
		packages = core.Collect(packages, core.Package{
			Name:       cols[0],
			NewVersion: cols[1],
			Manager:    core.KindSnap,
		})
	}
	return packages
}

// ParseSearch parses `snap find`: Name Version Publisher Notes Summary
func ParseSearch(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, cols := range rows(out) {
		pkg := core.Package{
			Name:    cols[0],
			Version: cols[1],
			Manager: core.KindSnap,
		}
		if len(cols) > 3 {
			rest := cols[3:]
			if len(rest) > 1 && notes[rest[0]] {
				rest = rest[1:]
			}
			pkg.Description = strings.Join(rest, " ")
		}
		packages = core.Collect(packages, pkg)
	}
	return packages
}

// rows splits whitespace-aligned tables into columns, skipping the header,
// blank lines and rows with fewer than three columns
func rows(out string) [][]string {
	var result [][]string
	for _, line := range core.Lines(out) {
		cols := strings.Fields(line)
		if len(cols) < 3 || cols[0] == headerName {
			continue
		}
		result = append(result, cols)
	}
	return result
}
