package snap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orange-update/orange/pkg/core"
)

func TestParseInstalled(t *testing.T) {
	out := `Name      Version          Rev    Tracking         Publisher   Notes

core22    20240111         1122   latest/stable    canonical✓  base
firefox   123.0-1          3836   latest/stable/…  mozilla✓    -
`
	pkgs := ParseInstalled(out)
	require.Len(t, pkgs, 2)
	require.Equal(t, core.Package{Name: "core22", Version: "20240111", Manager: core.KindSnap}, pkgs[0])
	require.Equal(t, "firefox", pkgs[1].Name)
}

func TestParseUpgradable(t *testing.T) {
	out := "Name     Version  Rev   Size   Publisher   Notes\nfirefox  124.0-2  3941  285MB  mozilla✓    -\n"
	pkgs := ParseUpgradable(out)
	require.Equal(t, []core.Package{{Name: "firefox", NewVersion: "124.0-2", Manager: core.KindSnap}}, pkgs)
}

func TestParseUpgradable_UpToDate(t *testing.T) {
	// "All snaps up to date." goes to stderr; stdout is empty
	pkgs := ParseUpgradable("")
	require.NotNil(t, pkgs)
	require.Empty(t, pkgs)
}

func TestParseSearch(t *testing.T) {
	out := `Name         Version   Publisher     Notes    Summary
vlc          3.0.20    videolan✓     -        The ultimate media player
code         e170252f  vscode✓       classic  Code editing. Redefined.
`
	pkgs := ParseSearch(out)
	require.Len(t, pkgs, 2)
	require.Equal(t, core.Package{
		Name:        "vlc",
		Version:     "3.0.20",
		Description: "The ultimate media player",
		Manager:     core.KindSnap,
	}, pkgs[0])
	require.Equal(t, "Code editing. Redefined.", pkgs[1].Description)
}
