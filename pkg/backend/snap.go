// pkg/backend/snap.go
package backend

import (
	"context"
	"strings"

	"github.com/orange-update/orange/pkg/core"
	"github.com/orange-update/orange/pkg/snap"
)

// SnapBackend drives snapd through the snap client
type SnapBackend struct {
	base
}

// NewSnapBackend creates a new Snap backend
func NewSnapBackend(cfg *Config) (*SnapBackend, error) {
	b, err := newBase(cfg, snap.Command)
	if err != nil {
		return nil, err
	}
	b.noMatches = snapNoMatches
	return &SnapBackend{base: b}, nil
}

// snapNoMatches matches `snap find` reporting no results
func snapNoMatches(res core.CommandResult) bool {
	return strings.Contains(res.Stderr, "No matching snaps")
}

func (b *SnapBackend) Name() string    { return string(core.KindSnap) }
func (b *SnapBackend) Command() string { return snap.Command }
func (b *SnapBackend) Kind() core.Kind { return core.KindSnap }

// RefreshIndex asks the store for pending refreshes. snapd keeps its own
// index current, so this only forces a store round trip.
func (b *SnapBackend) RefreshIndex(ctx context.Context) core.CommandResult {
	return b.runner.Execute(ctx, snap.RefreshArgs, false)
}

func (b *SnapBackend) Upgrade(ctx context.Context, target string) core.CommandResult {
	if target == "" {
		return b.mutate(ctx, snap.UpgradeAllArgs)
	}
	return b.mutate(ctx, snap.UpgradeArgs(target))
}

func (b *SnapBackend) Install(ctx context.Context, target string) core.CommandResult {
	return b.mutate(ctx, snap.InstallArgs(target))
}

func (b *SnapBackend) Remove(ctx context.Context, target string) core.CommandResult {
	return b.mutate(ctx, snap.RemoveArgs(target))
}

func (b *SnapBackend) Search(ctx context.Context, query string) []core.Package {
	return b.search(ctx, query, snap.SearchArgs, snap.ParseSearch)
}

func (b *SnapBackend) ListInstalled(ctx context.Context) []core.Package {
	return b.query(ctx, snap.ListArgs, snap.ParseInstalled)
}

func (b *SnapBackend) ListUpgradable(ctx context.Context) []core.Package {
	return b.query(ctx, snap.UpgradableArgs, snap.ParseUpgradable)
}
