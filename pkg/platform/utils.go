// pkg/platform/utils.go
package platform

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// OSReleasePath is the standard location of the distribution identity file
const OSReleasePath = "/etc/os-release"

// Distro identifies the running distribution
type Distro struct {
	ID        string
	Name      string
	VersionID string
	OS        string
	Arch      string
}

// String returns a string representation of the distro
func (d Distro) String() string {
	name := d.Name
	if name == "" {
		name = d.OS
	}
	if d.VersionID != "" {
		name += " " + d.VersionID
	}
	return fmt.Sprintf("%s (%s/%s)", name, d.OS, d.Arch)
}

// ReadOSRelease reads the distribution identity. A missing file yields only
// the OS and architecture.
func ReadOSRelease() Distro {
	d := Distro{OS: runtime.GOOS, Arch: runtime.GOARCH}
	f, err := os.Open(OSReleasePath)
	if err != nil {
		return d
	}
	defer f.Close()

	fields := parseOSRelease(f)
	d.ID = fields["ID"]
	d.Name = fields["NAME"]
	d.VersionID = fields["VERSION_ID"]
	return d
}

// parseOSRelease reads KEY=value pairs, unquoting values
func parseOSRelease(r io.Reader) map[string]string {
	out := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		out[key] = strings.Trim(value, `"'`)
	}
	return out
}
