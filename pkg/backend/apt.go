// pkg/backend/apt.go
package backend

import (
	"context"

	"github.com/orange-update/orange/pkg/apt"
	"github.com/orange-update/orange/pkg/core"
)

// AptBackend drives apt and dpkg on Debian-based systems
type AptBackend struct {
	base
}

// NewAptBackend creates a new APT backend
func NewAptBackend(cfg *Config) (*AptBackend, error) {
	b, err := newBase(cfg, apt.Command)
	if err != nil {
		return nil, err
	}
	return &AptBackend{base: b}, nil
}

// Name returns the backend display name
func (b *AptBackend) Name() string { return string(core.KindAPT) }

// Command returns the binary probed for availability
func (b *AptBackend) Command() string { return apt.Command }

// Kind returns the record provenance tag
func (b *AptBackend) Kind() core.Kind { return core.KindAPT }

// RefreshIndex runs `apt update`
func (b *AptBackend) RefreshIndex(ctx context.Context) core.CommandResult {
	return b.mutate(ctx, apt.RefreshArgs)
}

// Upgrade upgrades one package, or all of them when target is empty
func (b *AptBackend) Upgrade(ctx context.Context, target string) core.CommandResult {
	if target == "" {
		return b.mutate(ctx, apt.UpgradeAllArgs)
	}
	return b.mutate(ctx, apt.UpgradeArgs(target))
}

// Install installs a package
func (b *AptBackend) Install(ctx context.Context, target string) core.CommandResult {
	return b.mutate(ctx, apt.InstallArgs(target))
}

// Remove removes a package
func (b *AptBackend) Remove(ctx context.Context, target string) core.CommandResult {
	return b.mutate(ctx, apt.RemoveArgs(target))
}

// Search searches the package index
func (b *AptBackend) Search(ctx context.Context, query string) []core.Package {
	return b.search(ctx, query, apt.SearchArgs, apt.ParseSearch)
}

// ListInstalled lists installed packages from the dpkg status database
func (b *AptBackend) ListInstalled(ctx context.Context) []core.Package {
	return b.query(ctx, apt.ListArgs, apt.ParseInstalled)
}

// ListUpgradable lists packages with a newer candidate version
func (b *AptBackend) ListUpgradable(ctx context.Context) []core.Package {
	return b.query(ctx, apt.UpgradableArgs, apt.ParseUpgradable)
}
