// pkg/backend/dnf.go
package backend

import (
	"context"
	"strings"

	"github.com/orange-update/orange/pkg/core"
	"github.com/orange-update/orange/pkg/dnf"
)

// DnfBackend drives dnf on Fedora and RHEL-like systems
type DnfBackend struct {
	base
}

// NewDnfBackend creates a new DNF backend
func NewDnfBackend(cfg *Config) (*DnfBackend, error) {
	b, err := newBase(cfg, dnf.Command)
	if err != nil {
		return nil, err
	}
	b.noMatches = dnfNoMatches
	return &DnfBackend{base: b}, nil
}

// dnfNoMatches matches dnf4's "Error: No matching Packages to list" and
// "No matches found." which exit 1
func dnfNoMatches(res core.CommandResult) bool {
	if res.ExitCode != 1 {
		return false
	}
	out := res.Stderr + res.Stdout
	return strings.Contains(out, "No matching Packages") || strings.Contains(out, "No matches found")
}

// Name returns the backend display name
func (b *DnfBackend) Name() string { return string(core.KindDNF) }

// Command returns the binary probed for availability
func (b *DnfBackend) Command() string { return dnf.Command }

// Kind returns the record provenance tag
func (b *DnfBackend) Kind() core.Kind { return core.KindDNF }

// RefreshIndex runs `dnf check-update`. Its "updates available" status
// (100) is reported as success.
func (b *DnfBackend) RefreshIndex(ctx context.Context) core.CommandResult {
	res := b.mutate(ctx, dnf.RefreshArgs)
	if res.ExitCode == dnf.ExitUpdatesAvailable {
		res.ExitCode = 0
	}
	return res
}

// Upgrade upgrades one package, or all of them when target is empty
func (b *DnfBackend) Upgrade(ctx context.Context, target string) core.CommandResult {
	if target == "" {
		return b.mutate(ctx, dnf.UpgradeAllArgs)
	}
	return b.mutate(ctx, dnf.UpgradeArgs(target))
}

// Install installs a package
func (b *DnfBackend) Install(ctx context.Context, target string) core.CommandResult {
	return b.mutate(ctx, dnf.InstallArgs(target))
}

// Remove removes a package
func (b *DnfBackend) Remove(ctx context.Context, target string) core.CommandResult {
	return b.mutate(ctx, dnf.RemoveArgs(target))
}

// Search searches package names and summaries
func (b *DnfBackend) Search(ctx context.Context, query string) []core.Package {
	return b.search(ctx, query, dnf.SearchArgs, dnf.ParseSearch)
}

// ListInstalled lists installed packages
func (b *DnfBackend) ListInstalled(ctx context.Context) []core.Package {
	return b.query(ctx, dnf.ListArgs, dnf.ParseInstalled)
}

// ListUpgradable lists available updates
func (b *DnfBackend) ListUpgradable(ctx context.Context) []core.Package {
	return b.query(ctx, dnf.UpgradableArgs, dnf.ParseUpgradable)
}
