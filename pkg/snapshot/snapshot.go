// pkg/snapshot/snapshot.go
package snapshot

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"gopkg.in/yaml.v3"

	"github.com/orange-update/orange/pkg/core"
)

// Version is the document format version written by Encode
const Version = 1

// Format is the on-disk compression of a snapshot
type Format string

const (
	FormatPlain Format = "yaml"
	FormatXZ    Format = "xz"
	FormatZstd  Format = "zstd"
)

var (
	xzMagic   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// Snapshot records the installed package set of every available backend
type Snapshot struct {
	Version  int       `yaml:"version"`
	Created  time.Time `yaml:"created"`
	Host     string    `yaml:"host,omitempty"`
	Backends []Backend `yaml:"backends"`
}

// Backend is the installed set of one backend
type Backend struct {
	Name     string         `yaml:"name"`
	Packages []core.Package `yaml:"packages"`
}

// New creates an empty snapshot stamped with the current time
func New(host string) *Snapshot {
	return &Snapshot{
		Version: Version,
		Created: time.Now().UTC().Truncate(time.Second),
		Host:    host,
	}
}

// Add appends the installed set of one backend
func (s *Snapshot) Add(name string, pkgs []core.Package) {
	if pkgs == nil {
		pkgs = []core.Package{}
	}
	s.Backends = append(s.Backends, Backend{Name: name, Packages: pkgs})
}

// Count returns the number of package records across all backends
func (s *Snapshot) Count() int {
	n := 0
	for _, b := range s.Backends {
		n += len(b.Packages)
	}
	return n
}

// FormatFor picks the compression from a file extension
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return FormatXZ
	case ".zst", ".zstd":
		return FormatZstd
	default:
		return FormatPlain
	}
}

// Encode writes s to w in the given format
func Encode(w io.Writer, s *Snapshot, format Format) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	switch format {
	case FormatXZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return fmt.Errorf("creating xz writer: %w", err)
		}
		if _, err := xw.Write(data); err != nil {
			return fmt.Errorf("writing xz: %w", err)
		}
		return xw.Close()
	case FormatZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("creating zstd writer: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return fmt.Errorf("writing zstd: %w", err)
		}
		return zw.Close()
	case FormatPlain, "":
		_, err := w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}
}

// Decode reads a snapshot, detecting compression from the stream's magic bytes
func Decode(r io.Reader) (*Snapshot, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(xzMagic))

	var reader io.Reader = br
	switch {
	case bytes.HasPrefix(head, xzMagic):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening xz stream: %w", err)
		}
		reader = xr
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		defer zr.Close()
		reader = zr
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if s.Version > Version {
		return nil, fmt.Errorf("snapshot version %d is newer than supported %d", s.Version, Version)
	}
	return &s, nil
}

// Write saves s to path, compressed according to the extension
func Write(path string, s *Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	if err := Encode(f, s, FormatFor(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a snapshot written by Write
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
