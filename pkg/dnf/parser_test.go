package dnf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orange-update/orange/pkg/core"
)

const listInstalled = `Last metadata expiration check: 0:41:12 ago on Tue 12 Mar 2024 09:14:03 AM UTC.
Installed Packages
bash.x86_64                          5.2.15-3.fc38           @anaconda
curl.x86_64                          8.0.1-5.fc38            @updates
texlive-collection-latexrecommended.noarch
                                     9:svn54074-62.fc38      @fedora
`

func TestParseInstalled(t *testing.T) {
	pkgs := ParseInstalled(listInstalled)
	require.Len(t, pkgs, 3)
	require.Equal(t, core.Package{Name: "bash", Version: "5.2.15-3.fc38", Manager: core.KindDNF}, pkgs[0])
	require.Equal(t, "curl", pkgs[1].Name)
	require.Equal(t, "texlive-collection-latexrecommended", pkgs[2].Name)
	require.Equal(t, "9:svn54074-62.fc38", pkgs[2].Version)
}

func TestParseInstalled_Tolerant(t *testing.T) {
	out := "\nInstalled Packages\nvim-enhanced.x86_64 2:9.0.2120-1.fc38 @updates\n"
	pkgs := ParseInstalled(out)
	require.Len(t, pkgs, 1)
	require.Equal(t, "vim-enhanced", pkgs[0].Name)
}

func TestParseUpgradable(t *testing.T) {
	out := `Last metadata expiration check: 0:00:02 ago on Tue 12 Mar 2024.
Available Upgrades
kernel.x86_64                  6.7.9-100.fc38          updates
openssl-libs.x86_64            1:3.0.9-2.fc38          updates
`
	pkgs := ParseUpgradable(out)
	require.Len(t, pkgs, 2)
	require.Equal(t, core.Package{Name: "kernel", NewVersion: "6.7.9-100.fc38", Manager: core.KindDNF}, pkgs[0])
	require.Equal(t, "openssl-libs", pkgs[1].Name)
}

func TestParseUpgradable_Empty(t *testing.T) {
	pkgs := ParseUpgradable("Last metadata expiration check: 0:00:02 ago.\n")
	require.NotNil(t, pkgs)
	require.Empty(t, pkgs)
}

func TestParseSearch_DNF4(t *testing.T) {
	out := `Last metadata expiration check: 0:10:00 ago on Tue 12 Mar 2024.
======================== Name Exactly Matched: curl ========================
curl.x86_64 : A utility for getting files from remote servers (FTP, HTTP, and others)
===================== Name & Summary Matched: curl =========================
curlpp.x86_64 : A C++ wrapper for libcURL
`
	pkgs := ParseSearch(out)
	require.Len(t, pkgs, 2)
	require.Equal(t, "curl", pkgs[0].Name)
	require.Equal(t, "A utility for getting files from remote servers (FTP, HTTP, and others)", pkgs[0].Description)
	require.Equal(t, "curlpp", pkgs[1].Name)
}

func TestParseSearch_DNF5(t *testing.T) {
	out := "Updating and loading repositories:\nRepositories loaded.\nMatched fields: name (exact)\n curl.x86_64\tA utility for getting files from remote servers\n"
	pkgs := ParseSearch(out)
	require.Len(t, pkgs, 1)
	require.Equal(t, "curl", pkgs[0].Name)
	require.Equal(t, "A utility for getting files from remote servers", pkgs[0].Description)
}
