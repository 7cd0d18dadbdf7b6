// pkg/dnf/parser.go
package dnf

import (
	"regexp"
	"strings"

	"github.com/orange-update/orange/pkg/core"
)

// curl.x86_64 : A utility for getting files from remote servers
var searchRe = regexp.MustCompile(`^([^\s:]+)\s*:\s*(.+)$`)

// ParseInstalled parses `dnf list installed`
func ParseInstalled(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, row := range rows(out) {
		packages = core.Collect(packages, core.Package{
			Name:    row[0],
			Version: row[1],
			Manager: core.KindDNF,
		})
	}
	return packages
}

// ParseUpgradable parses `dnf list updates`
func ParseUpgradable(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, row := range rows(out) {
		packages = core.Collect(packages, core.Package{
			Name:       row[0],
			NewVersion: row[1],
			Manager:    core.KindDNF,
		})
	}
	return packages
}

// ParseSearch parses `dnf search`. dnf4 prints "name.arch : summary";
// dnf5 prints an indented "name.arch<TAB>summary".
func ParseSearch(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, line := range core.Lines(out) {
		if line == "" || strings.HasPrefix(line, "=") || isHeader(strings.TrimSpace(line)) {
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			name, summary, ok := strings.Cut(strings.TrimSpace(line), "\t")
			if !ok {
				continue
			}
			packages = core.Collect(packages, core.Package{
				Name:        stripArch(name),
				Description: strings.TrimSpace(summary),
				Manager:     core.KindDNF,
			})
			continue
		}

		m := searchRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		packages = core.Collect(packages, core.Package{
			Name:        stripArch(m[1]),
			Description: m[2],
			Manager:     core.KindDNF,
		})
	}
	return packages
}

// rows returns the (name, version) pairs of a dnf list table. dnf wraps
// long package names onto their own line with the remaining columns
// indented below; such pairs are joined back together.
func rows(out string) [][2]string {
	var result [][2]string
	pending := ""

	for _, line := range core.Lines(out) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isHeader(trimmed) {
			pending = ""
			continue
		}

		parts := strings.Fields(trimmed)
		continuation := line[0] == ' ' || line[0] == '\t'

		switch {
		case continuation && pending != "":
			result = append(result, [2]string{stripArch(pending), parts[0]})
			pending = ""
		case continuation:
			// orphaned continuation line
		case len(parts) == 1:
			pending = parts[0]
		default:
			result = append(result, [2]string{stripArch(parts[0]), parts[1]})
			pending = ""
		}
	}
	return result
}

func isHeader(line string) bool {
	for _, p := range headerPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// stripArch truncates "name.arch" at the first dot
func stripArch(name string) string {
	if idx := strings.IndexByte(name, '.'); idx > 0 {
		return name[:idx]
	}
	return name
}
