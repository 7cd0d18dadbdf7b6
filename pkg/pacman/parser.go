package pacman

import (
	"regexp"
	"strings"

	"github.com/orange-update/orange/pkg/core"
)

// extra/vim 9.1.0-1 (group) [installed]
var searchRe = regexp.MustCompile(`^([^/\s]+)/(\S+)\s+(\S+)`)

// ParseInstalled parses `pacman -Q`: "name version" per line
func ParseInstalled(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, line := range core.Lines(out) {
		if isDiagnostic(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		packages = core.Collect(packages, core.Package{
			Name:    parts[0],
			Version: parts[1],
			Manager: core.KindPacman,
		})
	}
	return packages
}

// ParseUpgradable parses `pacman -Qu`: "name current -> new" per line
func ParseUpgradable(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, line := range core.Lines(out) {
		if isDiagnostic(line) {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 4 || parts[2] != "->" {
			continue
		}
		packages = core.Collect(packages, core.Package{
			Name:           parts[0],
			CurrentVersion: parts[1],
			NewVersion:     parts[3],
			Manager:        core.KindPacman,
		})
	}
	return packages
}

// ParseSearch parses `pacman -Ss`: a "repo/name version" line followed by
// a description line indented by four spaces
func ParseSearch(out string) []core.Package {
	packages := make([]core.Package, 0)
	lines := core.Lines(out)

	for i, line := range lines {
		if strings.TrimSpace(line) == "" || line[0] == ' ' || isDiagnostic(line) {
			continue
		}

		m := searchRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		pkg := core.Package{
			Name:    m[2],
			Version: m[3],
			Manager: core.KindPacman,
		}
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "    ") {
			pkg.Description = strings.TrimSpace(lines[i+1])
		}
		packages = core.Collect(packages, pkg)
	}
	return packages
}

// isDiagnostic matches ":: Synchronizing..." progress and warning lines
func isDiagnostic(line string) bool {
	return strings.HasPrefix(line, "::") ||
		strings.HasPrefix(line, "warning:") ||
		strings.HasPrefix(line, "error:")
}
