// pkg/snap/constants.go
package snap

// Command is the snap binary. snapd authorizes requests itself; it is never
// wrapped in an elevation helper.
const Command = "snap"

// Argument vectors
var (
	RefreshArgs    = []string{Command, "refresh", "--list"}
	UpgradeAllArgs = []string{Command, "refresh"}
	ListArgs       = []string{Command, "list"}
	UpgradableArgs = []string{Command, "refresh", "--list"}
)

// UpgradeArgs refreshes a single snap
func UpgradeArgs(name string) []string {
	return []string{Command, "refresh", name}
}

// InstallArgs installs a snap from the store
func InstallArgs(name string) []string {
	return []string{Command, "install", name}
}

// RemoveArgs removes a snap
func RemoveArgs(name string) []string {
	return []string{Command, "remove", name}
}

// SearchArgs queries the store
func SearchArgs(query string) []string {
	return []string{Command, "find", query}
}

// headerName is the first column title of every snap table
const headerName = "Name"

// notes are the values of the "Notes" column of `snap find`
var notes = map[string]bool{
	"-":        true,
	"classic":  true,
	"devmode":  true,
	"jailmode": true,
	"broken":   true,
	"disabled": true,
}
