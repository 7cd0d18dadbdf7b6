// pkg/core/package.go
package core

import "strings"

// Kind identifies which native package manager produced a record
type Kind string

const (
	KindAPT     Kind = "APT"
	KindDNF     Kind = "DNF"
	KindPacman  Kind = "Pacman"
	KindFlatpak Kind = "Flatpak"
	KindSnap    Kind = "Snap"
)

// Kinds lists every supported backend in detection priority order
var Kinds = []Kind{KindAPT, KindDNF, KindPacman, KindFlatpak, KindSnap}

// ParseKind maps a display name or command name to a Kind, ignoring case
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds {
		if strings.EqualFold(string(k), name) {
			return k, true
		}
	}
	return "", false
}

// Package is the normalized record every backend parser produces
type Package struct {
	Name           string `yaml:"name"`
	Version        string `yaml:"version,omitempty"`
	CurrentVersion string `yaml:"current_version,omitempty"` // upgrade listings only
	NewVersion     string `yaml:"new_version,omitempty"`     // upgrade listings only
	Description    string `yaml:"description,omitempty"`
	AppID          string `yaml:"app_id,omitempty"` // Flatpak application ID
	Manager        Kind   `yaml:"manager"`
}

// Valid reports whether the record carries a name. Parsers drop invalid records.
func (p Package) Valid() bool {
	return strings.TrimSpace(p.Name) != ""
}

// Descriptor identifies a package manager and whether it was found on the host
type Descriptor struct {
	Name      string `yaml:"name"`    // Display name, e.g. "APT"
	Command   string `yaml:"command"` // Binary looked up on PATH, e.g. "apt"
	Available bool   `yaml:"available"`
}
