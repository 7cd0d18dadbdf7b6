package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("ORANGE_BACKEND", "")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.Equal(t, "auto", cfg.Elevation)
	require.Empty(t, cfg.DefaultBackend)
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv("ORANGE_BACKEND", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "default_backend: flatpak\ntimeout: 90s\nelevation: sudo\ndisabled: [snap]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "flatpak", cfg.DefaultBackend)
	require.Equal(t, 90*time.Second, cfg.Timeout)
	require.Equal(t, "sudo", cfg.Elevation)
	require.Equal(t, []string{"snap"}, cfg.Disabled)
}

func TestLoadConfig_EnvOverridesBackend(t *testing.T) {
	t.Setenv("ORANGE_BACKEND", "pacman")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_backend: apt\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "pacman", cfg.DefaultBackend)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: [not, a, duration]\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("ORANGE_BACKEND", "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.DefaultBackend = "dnf"
	cfg.Timeout = 2 * time.Minute
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "dnf", loaded.DefaultBackend)
	require.Equal(t, 2*time.Minute, loaded.Timeout)
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("flatpak")
	require.True(t, ok)
	require.Equal(t, KindFlatpak, k)

	_, ok = ParseKind("brew")
	require.False(t, ok)
}

func TestPackageValid(t *testing.T) {
	require.False(t, Package{Manager: KindAPT}.Valid())
	require.False(t, Package{Name: "  ", Manager: KindAPT}.Valid())
	require.True(t, Package{Name: "curl", Manager: KindAPT}.Valid())
}
