// pkg/core/interface.go
package core

import "context"

// PackageManager defines the common interface for all package manager backends.
//
// Mutating operations return the raw CommandResult of the underlying tool.
// Query operations return parsed records and never fail: a non-zero exit or
// unparseable output yields an empty slice.
type PackageManager interface {
	// Name returns the display name (e.g., "APT", "Flatpak")
	Name() string

	// Command returns the binary this backend drives (e.g., "apt")
	Command() string

	// Kind returns the provenance tag stamped on every record
	Kind() Kind

	// Available reports whether Command resolved on PATH at construction
	Available() bool

	// RefreshIndex updates the package index without changing installed packages
	RefreshIndex(ctx context.Context) CommandResult

	// Upgrade upgrades target, or every upgradable package when target is empty
	Upgrade(ctx context.Context, target string) CommandResult

	// Install installs a package
	Install(ctx context.Context, target string) CommandResult

	// Remove removes a package; dependents are handled by the native tool
	Remove(ctx context.Context, target string) CommandResult

	// Search searches the package index. query must be non-empty.
	Search(ctx context.Context, query string) []Package

	// ListInstalled lists installed packages
	ListInstalled(ctx context.Context) []Package

	// ListUpgradable lists installed packages with a newer version available
	ListUpgradable(ctx context.Context) []Package
}

// Describe returns the descriptor for a package manager
func Describe(pm PackageManager) Descriptor {
	return Descriptor{
		Name:      pm.Name(),
		Command:   pm.Command(),
		Available: pm.Available(),
	}
}
