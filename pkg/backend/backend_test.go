package backend

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orange-update/orange/pkg/core"
)

type call struct {
	argv    []string
	elevate bool
}

// fakeRunner records invocations and replays canned results keyed by argv[1]
type fakeRunner struct {
	mu      sync.Mutex
	calls   []call
	results map[string]core.CommandResult
}

func (f *fakeRunner) Execute(_ context.Context, argv []string, elevate bool) core.CommandResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{argv: argv, elevate: elevate})
	if len(argv) > 1 {
		if res, ok := f.results[argv[1]]; ok {
			return res
		}
	}
	return core.CommandResult{}
}

func (f *fakeRunner) last() call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func newConfig(r *fakeRunner, found ...string) *Config {
	set := make(map[string]bool, len(found))
	for _, f := range found {
		set[f] = true
	}
	return &Config{
		Runner: r,
		Lookup: func(name string) bool { return set[name] },
	}
}

func TestNew_RequiresRunner(t *testing.T) {
	_, err := NewAptBackend(&Config{})
	require.ErrorIs(t, err, ErrNoRunner)

	_, err = NewSnapBackend(nil)
	require.ErrorIs(t, err, ErrNoRunner)
}

func TestAvailable(t *testing.T) {
	r := &fakeRunner{}
	a, err := NewAptBackend(newConfig(r, "apt"))
	require.NoError(t, err)
	require.True(t, a.Available())

	d, err := NewDnfBackend(newConfig(r, "apt"))
	require.NoError(t, err)
	require.False(t, d.Available())
}

func TestConstructors_PriorityOrder(t *testing.T) {
	r := &fakeRunner{}
	var kinds []core.Kind
	for _, c := range Constructors {
		pm, err := c(newConfig(r))
		require.NoError(t, err)
		kinds = append(kinds, pm.Kind())
	}
	require.Equal(t, core.Kinds, kinds)
}

func TestMutationsElevate(t *testing.T) {
	r := &fakeRunner{}
	cfg := newConfig(r)

	tests := []struct {
		name     string
		run      func(ctx context.Context) core.CommandResult
		expected []string
	}{
		{
			name:     "apt install",
			run:      func(ctx context.Context) core.CommandResult { return must(NewAptBackend(cfg)).Install(ctx, "curl") },
			expected: []string{"apt", "install", "-y", "curl"},
		},
		{
			name:     "apt upgrade one",
			run:      func(ctx context.Context) core.CommandResult { return must(NewAptBackend(cfg)).Upgrade(ctx, "curl") },
			expected: []string{"apt", "install", "--only-upgrade", "-y", "curl"},
		},
		{
			name:     "dnf remove",
			run:      func(ctx context.Context) core.CommandResult { return must(NewDnfBackend(cfg)).Remove(ctx, "vim") },
			expected: []string{"dnf", "remove", "-y", "vim"},
		},
		{
			name:     "pacman full upgrade",
			run:      func(ctx context.Context) core.CommandResult { return must(NewPacmanBackend(cfg)).Upgrade(ctx, "") },
			expected: []string{"pacman", "-Syu", "--noconfirm"},
		},
		{
			name:     "flatpak install",
			run:      func(ctx context.Context) core.CommandResult { return must(NewFlatpakBackend(cfg)).Install(ctx, "org.gimp.GIMP") },
			expected: []string{"flatpak", "install", "-y", "org.gimp.GIMP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.run(context.Background())
			require.True(t, res.Success())
			got := r.last()
			require.Equal(t, tt.expected, got.argv)
			require.True(t, got.elevate)
		})
	}
}

func TestQueriesDoNotElevate(t *testing.T) {
	r := &fakeRunner{}
	b := must(NewPacmanBackend(newConfig(r, "pacman")))

	b.ListInstalled(context.Background())
	require.False(t, r.last().elevate)
	require.Equal(t, []string{"pacman", "-Q"}, r.last().argv)

	b.Search(context.Background(), "firefox")
	require.False(t, r.last().elevate)
	require.Equal(t, []string{"pacman", "-Ss", "firefox"}, r.last().argv)
}

func TestUpgradeAll_Idempotent(t *testing.T) {
	r := &fakeRunner{}
	b := must(NewAptBackend(newConfig(r, "apt")))

	require.Equal(t, 0, b.Upgrade(context.Background(), "").ExitCode)
	require.Equal(t, 0, b.Upgrade(context.Background(), "").ExitCode)
	require.Len(t, r.calls, 2)
}

func TestAptListUpgradable(t *testing.T) {
	r := &fakeRunner{results: map[string]core.CommandResult{
		"list": {Stdout: "Listing...\ncurl/stable 7.88.1-1 amd64 [upgradable from: 7.85.0-1]\n"},
	}}
	b := must(NewAptBackend(newConfig(r, "apt")))

	pkgs := b.ListUpgradable(context.Background())
	require.Equal(t, []core.Package{{
		Name:           "curl",
		CurrentVersion: "7.85.0-1",
		NewVersion:     "7.88.1-1",
		Manager:        core.KindAPT,
	}}, pkgs)
}

func TestQueryFailureYieldsEmpty(t *testing.T) {
	r := &fakeRunner{results: map[string]core.CommandResult{
		"list": {ExitCode: 1, Stdout: "curl.x86_64 8.0.1 updates\n", Stderr: "Error: repo broken"},
	}}
	b := must(NewDnfBackend(newConfig(r, "dnf")))

	pkgs := b.ListInstalled(context.Background())
	require.NotNil(t, pkgs)
	require.Empty(t, pkgs)
}

func TestSearch_EmptyQueryNotRun(t *testing.T) {
	r := &fakeRunner{}
	b := must(NewSnapBackend(newConfig(r, "snap")))

	pkgs := b.Search(context.Background(), "   ")
	require.NotNil(t, pkgs)
	require.Empty(t, pkgs)
	require.Empty(t, r.calls)
}

func TestDnfRefresh_UpdatesAvailableIsSuccess(t *testing.T) {
	r := &fakeRunner{results: map[string]core.CommandResult{
		"check-update": {ExitCode: 100, Stdout: "kernel.x86_64 6.7.9 updates\n"},
	}}
	b := must(NewDnfBackend(newConfig(r, "dnf")))

	res := b.RefreshIndex(context.Background())
	require.Equal(t, 0, res.ExitCode)
	require.True(t, r.last().elevate)
}

func TestDnfRefresh_PassesRealFailures(t *testing.T) {
	r := &fakeRunner{results: map[string]core.CommandResult{
		"check-update": {ExitCode: 1, Stderr: "Error: Failed to download metadata"},
	}}
	b := must(NewDnfBackend(newConfig(r, "dnf")))

	require.Equal(t, 1, b.RefreshIndex(context.Background()).ExitCode)
}

func TestSnapRefreshIndex_Unelevated(t *testing.T) {
	r := &fakeRunner{}
	b := must(NewSnapBackend(newConfig(r, "snap")))

	b.RefreshIndex(context.Background())
	require.Equal(t, []string{"snap", "refresh", "--list"}, r.last().argv)
	require.False(t, r.last().elevate)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestQueryFailureReported(t *testing.T) {
	r := &fakeRunner{results: map[string]core.CommandResult{
		"list": {ExitCode: 100, Stderr: "E: The list of sources could not be read."},
	}}
	b := must(NewAptBackend(newConfig(r, "apt")))

	ctx, status := core.WithQueryStatus(context.Background())
	require.Empty(t, b.ListUpgradable(ctx))
	res, failed := status.Failed()
	require.True(t, failed)
	require.Equal(t, 100, res.ExitCode)
}

func TestQueryNoMatchesIsNotFailure(t *testing.T) {
	tests := []struct {
		name  string
		found string
		key   string
		res   core.CommandResult
		run   func(ctx context.Context, cfg *Config) []core.Package
	}{
		{
			name:  "pacman up to date",
			found: "pacman",
			key:   "-Qu",
			res:   core.CommandResult{ExitCode: 1},
			run: func(ctx context.Context, cfg *Config) []core.Package {
				return must(NewPacmanBackend(cfg)).ListUpgradable(ctx)
			},
		},
		{
			name:  "pacman search miss",
			found: "pacman",
			key:   "-Ss",
			res:   core.CommandResult{ExitCode: 1},
			run: func(ctx context.Context, cfg *Config) []core.Package {
				return must(NewPacmanBackend(cfg)).Search(ctx, "nope")
			},
		},
		{
			name:  "dnf4 no updates",
			found: "dnf",
			key:   "list",
			res:   core.CommandResult{ExitCode: 1, Stderr: "Error: No matching Packages to list\n"},
			run: func(ctx context.Context, cfg *Config) []core.Package {
				return must(NewDnfBackend(cfg)).ListUpgradable(ctx)
			},
		},
		{
			name:  "snap find miss",
			found: "snap",
			key:   "find",
			res:   core.CommandResult{ExitCode: 1, Stderr: `No matching snaps for "nope"`},
			run: func(ctx context.Context, cfg *Config) []core.Package {
				return must(NewSnapBackend(cfg)).Search(ctx, "nope")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{results: map[string]core.CommandResult{tt.key: tt.res}}
			ctx, status := core.WithQueryStatus(context.Background())

			pkgs := tt.run(ctx, newConfig(r, tt.found))
			require.NotNil(t, pkgs)
			require.Empty(t, pkgs)
			_, failed := status.Failed()
			require.False(t, failed)
		})
	}
}

func TestPacmanQueryErrorStillReported(t *testing.T) {
	r := &fakeRunner{results: map[string]core.CommandResult{
		"-Qu": {ExitCode: 1, Stderr: "error: failed to initialize alpm library"},
	}}
	b := must(NewPacmanBackend(newConfig(r, "pacman")))

	ctx, status := core.WithQueryStatus(context.Background())
	require.Empty(t, b.ListUpgradable(ctx))
	_, failed := status.Failed()
	require.True(t, failed)
}
