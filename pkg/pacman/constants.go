package pacman

// Command is the pacman binary
const Command = "pacman"

// Argument vectors
var (
	RefreshArgs    = []string{Command, "-Sy"}
	UpgradeAllArgs = []string{Command, "-Syu", "--noconfirm"}
	ListArgs       = []string{Command, "-Q"}
	UpgradableArgs = []string{Command, "-Qu"}
)

// UpgradeArgs reinstalls a single package from the synced databases, which
// upgrades it when a newer version is available
func UpgradeArgs(pkg string) []string {
	return []string{Command, "-S", "--noconfirm", pkg}
}

// InstallArgs installs a package non-interactively
func InstallArgs(pkg string) []string {
	return []string{Command, "-S", "--noconfirm", pkg}
}

// RemoveArgs removes a package; dependents make pacman refuse
func RemoveArgs(pkg string) []string {
	return []string{Command, "-R", "--noconfirm", pkg}
}

// SearchArgs searches the sync databases
func SearchArgs(query string) []string {
	return []string{Command, "-Ss", query}
}
