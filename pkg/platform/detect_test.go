package platform

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orange-update/orange/pkg/backend"
	"github.com/orange-update/orange/pkg/core"
)

type nopRunner struct{}

func (nopRunner) Execute(context.Context, []string, bool) core.CommandResult {
	return core.CommandResult{}
}

func only(names ...string) func(string) bool {
	return func(cmd string) bool {
		for _, n := range names {
			if n == cmd {
				return true
			}
		}
		return false
	}
}

func names(pms []core.PackageManager) []string {
	out := make([]string, 0, len(pms))
	for _, pm := range pms {
		out = append(out, pm.Name())
	}
	return out
}

func TestDetectAll_SingleBinary(t *testing.T) {
	d := NewDetector(WithRunner(nopRunner{}), WithLookup(only("pacman")))
	require.Equal(t, []string{"Pacman"}, names(d.DetectAll()))
}

func TestDetectAll_PriorityOrder(t *testing.T) {
	d := NewDetector(WithRunner(nopRunner{}), WithLookup(only("snap", "flatpak", "apt")))
	require.Equal(t, []string{"APT", "Flatpak", "Snap"}, names(d.DetectAll()))
}

func TestDetectAll_NoneAvailable(t *testing.T) {
	d := NewDetector(WithRunner(nopRunner{}), WithLookup(only()))
	require.Empty(t, d.DetectAll())

	descs := d.Descriptors()
	require.Len(t, descs, len(core.Kinds))
	for _, desc := range descs {
		require.False(t, desc.Available)
	}
}

func TestDetectAll_ConstructorFailures(t *testing.T) {
	panicking := func(*backend.Config) (core.PackageManager, error) { panic("boom") }
	failing := func(*backend.Config) (core.PackageManager, error) { return nil, context.Canceled }

	d := NewDetector(
		WithRunner(nopRunner{}),
		WithLookup(only("apt", "dnf")),
		WithConstructors(panicking, backend.Constructors[1], failing, backend.Constructors[0]),
	)

	require.Equal(t, []string{"DNF", "APT"}, names(d.DetectAll()))
	require.Len(t, d.Descriptors(), 2)
}

func TestDetectAll_Disabled(t *testing.T) {
	d := NewDetector(
		WithRunner(nopRunner{}),
		WithLookup(only("apt", "snap")),
		WithDisabled("SNAP"),
	)
	require.Equal(t, []string{"APT"}, names(d.DetectAll()))
}

func TestDescriptors_SkipsDisabled(t *testing.T) {
	d := NewDetector(
		WithRunner(nopRunner{}),
		WithLookup(only("apt")),
		WithDisabled("snap"),
	)
	descs := d.Descriptors()
	require.Len(t, descs, len(core.Kinds)-1)
	for _, desc := range descs {
		require.NotEqual(t, "snap", desc.Command)
	}
}

func TestDetectAll_ReturnsCopy(t *testing.T) {
	d := NewDetector(WithRunner(nopRunner{}), WithLookup(only("apt", "dnf")))
	first := d.DetectAll()
	first[0] = nil
	require.NotNil(t, d.DetectAll()[0])
}

func TestByName(t *testing.T) {
	d := NewDetector(WithRunner(nopRunner{}), WithLookup(only("flatpak")))

	pm, ok := d.ByName("FLATPAK")
	require.True(t, ok)
	require.Equal(t, core.KindFlatpak, pm.Kind())

	_, ok = d.ByName("apt")
	require.False(t, ok)
}

func TestResolveBackend(t *testing.T) {
	d := NewDetector(WithRunner(nopRunner{}), WithLookup(only("dnf", "flatpak")))

	pm, err := ResolveBackend(d, "flatpak")
	require.NoError(t, err)
	require.Equal(t, "Flatpak", pm.Name())

	pm, err = ResolveBackend(d, "apt")
	require.NoError(t, err)
	require.Equal(t, "DNF", pm.Name())

	pm, err = ResolveBackend(d, "")
	require.NoError(t, err)
	require.Equal(t, "DNF", pm.Name())

	_, err = ResolveBackend(NewDetector(WithRunner(nopRunner{}), WithLookup(only())), "")
	require.ErrorIs(t, err, ErrNoBackends)
}

func TestParseOSRelease(t *testing.T) {
	in := `# comment
NAME="Fedora Linux"
VERSION_ID=40
ID=fedora
BROKEN LINE
`
	fields := parseOSRelease(strings.NewReader(in))
	require.Equal(t, "Fedora Linux", fields["NAME"])
	require.Equal(t, "40", fields["VERSION_ID"])
	require.Equal(t, "fedora", fields["ID"])
	require.Len(t, fields, 3)
}

func TestDistroString(t *testing.T) {
	d := Distro{Name: "Debian GNU/Linux", VersionID: "12", OS: "linux", Arch: "amd64"}
	require.Equal(t, "Debian GNU/Linux 12 (linux/amd64)", d.String())
}
