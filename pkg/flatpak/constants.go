// pkg/flatpak/constants.go
package flatpak

// Command is the flatpak binary. Flatpak installs per user and is never elevated.
const Command = "flatpak"

// Argument vectors
var (
	RefreshArgs    = []string{Command, "update", "--appstream"}
	UpgradeAllArgs = []string{Command, "update", "-y"}
	ListArgs       = []string{Command, "list", "--app"}
	UpgradableArgs = []string{Command, "remote-ls", "--updates"}
)

// UpgradeArgs updates a single application
func UpgradeArgs(ref string) []string {
	return []string{Command, "update", "-y", ref}
}

// InstallArgs installs an application from any configured remote
func InstallArgs(ref string) []string {
	return []string{Command, "install", "-y", ref}
}

// RemoveArgs uninstalls an application
func RemoveArgs(ref string) []string {
	return []string{Command, "uninstall", "-y", ref}
}

// SearchArgs searches the appstream data of configured remotes
func SearchArgs(query string) []string {
	return []string{Command, "search", query}
}

// Column titles flatpak prints when attached to a terminal
const (
	headerName = "Name"
	headerApp  = "Application ID"
	headerDesc = "Description"
)
