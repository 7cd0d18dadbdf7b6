// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Entry maps one canonical package name to backend-specific names, keyed
// by lower-case backend name
type Entry map[string]string

// Registry translates canonical package names into the name each backend
// knows them by.
//
//	[firefox]
//	apt     = "firefox-esr"
//	flatpak = "org.mozilla.firefox"
type Registry struct {
	entries map[string]Entry
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Load reads an aliases file. A missing file yields an empty registry.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("registry: reading %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse decodes aliases from TOML text
func Parse(data string) (*Registry, error) {
	var raw map[string]map[string]string
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("registry: failed to parse aliases: %w", err)
	}

	r := New()
	for name, backends := range raw {
		for backend, pkg := range backends {
			r.Add(name, backend, pkg)
		}
	}
	return r, nil
}

// Add registers the name a backend uses for a canonical package
func (r *Registry) Add(name, backend, pkg string) {
	name = strings.TrimSpace(name)
	e, ok := r.entries[name]
	if !ok {
		e = make(Entry)
		r.entries[name] = e
	}
	e[strings.ToLower(backend)] = strings.TrimSpace(pkg)
}

// Lookup returns the entry for a canonical name
func (r *Registry) Lookup(name string) (Entry, bool) {
	if r == nil {
		return nil, false
	}
	e, ok := r.entries[name]
	return e, ok
}

// Resolve takes a canonical package name and a backend name and returns
// the backend-specific package name. Unmapped names pass through.
// e.g. Resolve("firefox", "Flatpak") -> "org.mozilla.firefox"
func (r *Registry) Resolve(name, backend string) string {
	e, ok := r.Lookup(name)
	if !ok {
		return name
	}
	if pkg := e[strings.ToLower(backend)]; pkg != "" {
		return pkg
	}
	return name
}

// Len reports the number of canonical names
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}
