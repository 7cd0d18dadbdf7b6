// pkg/backend/flatpak.go
package backend

import (
	"context"

	"github.com/orange-update/orange/pkg/core"
	"github.com/orange-update/orange/pkg/flatpak"
)

// FlatpakBackend drives flatpak. Targets are application IDs or refs.
type FlatpakBackend struct {
	base
}

// NewFlatpakBackend creates a new Flatpak backend
func NewFlatpakBackend(cfg *Config) (*FlatpakBackend, error) {
	b, err := newBase(cfg, flatpak.Command)
	if err != nil {
		return nil, err
	}
	return &FlatpakBackend{base: b}, nil
}

func (b *FlatpakBackend) Name() string    { return string(core.KindFlatpak) }
func (b *FlatpakBackend) Command() string { return flatpak.Command }
func (b *FlatpakBackend) Kind() core.Kind { return core.KindFlatpak }

// RefreshIndex refreshes appstream data of every remote
func (b *FlatpakBackend) RefreshIndex(ctx context.Context) core.CommandResult {
	return b.mutate(ctx, flatpak.RefreshArgs)
}

func (b *FlatpakBackend) Upgrade(ctx context.Context, target string) core.CommandResult {
	if target == "" {
		return b.mutate(ctx, flatpak.UpgradeAllArgs)
	}
	return b.mutate(ctx, flatpak.UpgradeArgs(target))
}

func (b *FlatpakBackend) Install(ctx context.Context, target string) core.CommandResult {
	return b.mutate(ctx, flatpak.InstallArgs(target))
}

func (b *FlatpakBackend) Remove(ctx context.Context, target string) core.CommandResult {
	return b.mutate(ctx, flatpak.RemoveArgs(target))
}

func (b *FlatpakBackend) Search(ctx context.Context, query string) []core.Package {
	return b.search(ctx, query, flatpak.SearchArgs, flatpak.ParseSearch)
}

func (b *FlatpakBackend) ListInstalled(ctx context.Context) []core.Package {
	return b.query(ctx, flatpak.ListArgs, flatpak.ParseInstalled)
}

func (b *FlatpakBackend) ListUpgradable(ctx context.Context) []core.Package {
	return b.query(ctx, flatpak.UpgradableArgs, flatpak.ParseUpgradable)
}
