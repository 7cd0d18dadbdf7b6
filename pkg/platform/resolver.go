// pkg/platform/resolver.go
package platform

import (
	"errors"

	"github.com/orange-update/orange/pkg/core"
)

// ErrNoBackends is returned when the host has no supported package manager
var ErrNoBackends = errors.New("no package managers available")

// ResolveBackend picks the backend to use by default.
//
// Priority:
// 1. preferred, when it names an available backend
// 2. first available backend in priority order
func ResolveBackend(d *Detector, preferred string) (core.PackageManager, error) {
	available := d.DetectAll()
	if len(available) == 0 {
		return nil, ErrNoBackends
	}

	if preferred != "" {
		if pm, ok := d.ByName(preferred); ok {
			return pm, nil
		}
		d.cfg.Logger.Warnw("preferred backend not available", "backend", preferred)
	}

	return available[0], nil
}
