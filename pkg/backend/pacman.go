// pkg/backend/pacman.go
package backend

import (
	"context"
	"strings"

	"github.com/orange-update/orange/pkg/core"
	"github.com/orange-update/orange/pkg/pacman"
)

// PacmanBackend implements the Backend interface for Arch Linux packages
type PacmanBackend struct {
	base
}

// NewPacmanBackend creates a new Pacman backend
func NewPacmanBackend(cfg *Config) (*PacmanBackend, error) {
	b, err := newBase(cfg, pacman.Command)
	if err != nil {
		return nil, err
	}
	b.noMatches = pacmanNoMatches
	return &PacmanBackend{base: b}, nil
}

// pacmanNoMatches matches -Qu and -Ss, which exit 1 without output when
// nothing is outdated or found
func pacmanNoMatches(res core.CommandResult) bool {
	return res.ExitCode == 1 && strings.TrimSpace(res.Stdout) == "" && strings.TrimSpace(res.Stderr) == ""
}

// Name returns the backend name
func (b *PacmanBackend) Name() string { return string(core.KindPacman) }

// Command returns the binary probed for availability
func (b *PacmanBackend) Command() string { return pacman.Command }

// Kind returns the record provenance tag
func (b *PacmanBackend) Kind() core.Kind { return core.KindPacman }

// RefreshIndex syncs the package databases
func (b *PacmanBackend) RefreshIndex(ctx context.Context) core.CommandResult {
	return b.mutate(ctx, pacman.RefreshArgs)
}

// Upgrade upgrades one package, or performs a full system upgrade when target is empty
func (b *PacmanBackend) Upgrade(ctx context.Context, target string) core.CommandResult {
	if target == "" {
		return b.mutate(ctx, pacman.UpgradeAllArgs)
	}
	return b.mutate(ctx, pacman.UpgradeArgs(target))
}

// Install installs a package
func (b *PacmanBackend) Install(ctx context.Context, target string) core.CommandResult {
	return b.mutate(ctx, pacman.InstallArgs(target))
}

// Remove removes a package
func (b *PacmanBackend) Remove(ctx context.Context, target string) core.CommandResult {
	return b.mutate(ctx, pacman.RemoveArgs(target))
}

// Search searches for packages in Pacman repositories
func (b *PacmanBackend) Search(ctx context.Context, query string) []core.Package {
	return b.search(ctx, query, pacman.SearchArgs, pacman.ParseSearch)
}

// ListInstalled lists installed packages
func (b *PacmanBackend) ListInstalled(ctx context.Context) []core.Package {
	return b.query(ctx, pacman.ListArgs, pacman.ParseInstalled)
}

// ListUpgradable lists outdated packages against the last synced databases
func (b *PacmanBackend) ListUpgradable(ctx context.Context) []core.Package {
	return b.query(ctx, pacman.UpgradableArgs, pacman.ParseUpgradable)
}
