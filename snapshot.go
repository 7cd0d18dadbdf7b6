// snapshot.go
package orange

import (
	"context"
	"fmt"
	"strings"

	"github.com/orange-update/orange/pkg/platform"
	"github.com/orange-update/orange/pkg/snapshot"
)

// Snapshot captures the installed packages of every available backend,
// independent of the current selection. Backends whose listing failed are
// left out and named in the error.
func (m *Manager) Snapshot(ctx context.Context) (*snapshot.Snapshot, error) {
	s := snapshot.New(platform.ReadOSRelease().String())
	var failed []string
	for _, pm := range m.detector.DetectAll() {
		if ctx.Err() != nil {
			break
		}
		pkgs, err := m.queryOn(ctx, "snapshot", pm, func(ctx context.Context, pm PackageManager) []Package {
			return pm.ListInstalled(ctx)
		})
		if err != nil {
			failed = append(failed, pm.Name())
			continue
		}
		s.Add(pm.Name(), pkgs)
	}

	if len(failed) > 0 {
		return s, &Error{Op: "snapshot", Err: fmt.Errorf("%w: listing failed for %s", ErrCommandFailed, strings.Join(failed, ", "))}
	}
	return s, ctx.Err()
}
