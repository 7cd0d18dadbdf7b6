// pkg/dnf/constants.go
package dnf

// Command is the dnf binary
const Command = "dnf"

// ExitUpdatesAvailable is returned by `dnf check-update` when updates exist
const ExitUpdatesAvailable = 100

// Argument vectors
var (
	RefreshArgs    = []string{Command, "check-update"}
	UpgradeAllArgs = []string{Command, "upgrade", "-y"}
	ListArgs       = []string{Command, "list", "installed"}
	UpgradableArgs = []string{Command, "list", "updates"}
)

// UpgradeArgs upgrades a single package
func UpgradeArgs(pkg string) []string {
	return []string{Command, "upgrade", "-y", pkg}
}

// InstallArgs installs a package non-interactively
func InstallArgs(pkg string) []string {
	return []string{Command, "install", "-y", pkg}
}

// RemoveArgs removes a package and its unused dependencies per dnf policy
func RemoveArgs(pkg string) []string {
	return []string{Command, "remove", "-y", pkg}
}

// SearchArgs searches package names and summaries
func SearchArgs(query string) []string {
	return []string{Command, "search", query}
}

// Lines printed by dnf around listings that never describe a package
var headerPrefixes = []string{
	"Installed",
	"Available",
	"Last metadata",
	"Updating and loading",
	"Repositories loaded",
	"Obsoleting",
	"Security:",
	"Matched fields",
	"Extra Packages",
	"Upgradable",
}
