// pkg/apt/parser.go
package apt

import (
	"regexp"
	"strings"

	"github.com/orange-update/orange/pkg/core"
)

var (
	// curl/stable 7.88.1-1 amd64 [upgradable from: 7.85.0-1]
	upgradableRe = regexp.MustCompile(`^([^\s/]+).*?\s+(\S+)\s+.*?\[upgradable from:\s+([^\s\]]+)\]`)

	// curl/stable,now 7.88.1-10 amd64 [installed]
	searchHeaderRe = regexp.MustCompile(`^([^\s/]+)/\S+\s+(\S+)`)

	// curl - command line tool (apt-cache search style)
	searchLegacyRe = regexp.MustCompile(`^([^\s/]+)\s+-\s+(.+)$`)
)

// ParseInstalled parses `dpkg -l`. Only rows marked "ii" (desired install,
// currently installed) are reported.
func ParseInstalled(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, line := range core.Lines(out) {
		if !strings.HasPrefix(line, installedMarker) {
			continue
		}

		parts := core.FieldsN(line, 5)
		if len(parts) < 4 || parts[0] != installedMarker {
			continue
		}

		pkg := core.Package{
			Name:    stripArch(parts[1]),
			Version: parts[2],
			Manager: core.KindAPT,
		}
		if len(parts) > 4 {
			pkg.Description = parts[4]
		}
		packages = core.Collect(packages, pkg)
	}
	return packages
}

// ParseUpgradable parses `apt list --upgradable`
func ParseUpgradable(out string) []core.Package {
	packages := make([]core.Package, 0)
	for _, line := range core.Lines(out) {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, listingHeader) {
			continue
		}
		if !strings.Contains(line, upgradableSuffix) {
			continue
		}

		m := upgradableRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		packages = core.Collect(packages, core.Package{
			Name:           m[1],
			NewVersion:     m[2],
			CurrentVersion: m[3],
			Manager:        core.KindAPT,
		})
	}
	return packages
}

// ParseSearch parses `apt search`. Each hit is a "name/suite version arch"
// line followed by an indented description line. The one-line
// "name - description" form printed by older releases is also accepted.
func ParseSearch(out string) []core.Package {
	packages := make([]core.Package, 0)
	last := -1

	for _, line := range core.Lines(out) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(line, sortingHeader) || strings.HasPrefix(line, fullTextHeader) {
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if last >= 0 && packages[last].Description == "" {
				packages[last].Description = trimmed
			}
			continue
		}

		if m := searchHeaderRe.FindStringSubmatch(line); m != nil {
			before := len(packages)
			packages = core.Collect(packages, core.Package{
				Name:    m[1],
				Version: m[2],
				Manager: core.KindAPT,
			})
			last = len(packages) - 1
			if len(packages) == before {
				last = -1
			}
			continue
		}

		if m := searchLegacyRe.FindStringSubmatch(line); m != nil {
			packages = core.Collect(packages, core.Package{
				Name:        m[1],
				Description: m[2],
				Manager:     core.KindAPT,
			})
		}
		last = -1
	}
	return packages
}

// stripArch removes the ":amd64" multiarch qualifier dpkg adds to some names
func stripArch(name string) string {
	if idx := strings.IndexByte(name, ':'); idx > 0 {
		return name[:idx]
	}
	return name
}
