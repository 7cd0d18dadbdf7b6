// pkg/apt/constants.go
package apt

const (
	// Command is the binary used for index and package operations
	Command = "apt"

	// StatusCommand lists the dpkg status database
	StatusCommand = "dpkg"
)

// Argument vectors
var (
	RefreshArgs    = []string{Command, "update"}
	UpgradeAllArgs = []string{Command, "upgrade", "-y"}
	ListArgs       = []string{StatusCommand, "-l"}
	UpgradableArgs = []string{Command, "list", "--upgradable"}
)

// UpgradeArgs upgrades a single package without installing it when absent
func UpgradeArgs(pkg string) []string {
	return []string{Command, "install", "--only-upgrade", "-y", pkg}
}

// InstallArgs installs a package non-interactively
func InstallArgs(pkg string) []string {
	return []string{Command, "install", "-y", pkg}
}

// RemoveArgs removes a package, keeping its configuration files
func RemoveArgs(pkg string) []string {
	return []string{Command, "remove", "-y", pkg}
}

// SearchArgs searches package names and descriptions
func SearchArgs(query string) []string {
	return []string{Command, "search", query}
}

// Output markers
const (
	installedMarker  = "ii"
	listingHeader    = "Listing"
	sortingHeader    = "Sorting"
	fullTextHeader   = "Full Text"
	upgradableSuffix = "[upgradable from:"
)
