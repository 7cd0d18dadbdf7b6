// pkg/platform/detect.go
package platform

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/orange-update/orange/pkg/backend"
	"github.com/orange-update/orange/pkg/core"
	"github.com/orange-update/orange/pkg/executor"
)

// Detector probes the host for supported package managers. Detection runs
// once; the adapters it returns are shared and never change afterwards.
type Detector struct {
	cfg          backend.Config
	constructors []backend.Constructor
	disabled     []string

	once      sync.Once
	all       []core.PackageManager
	available []core.PackageManager
}

// Option configures a Detector
type Option func(*Detector)

// WithRunner sets the command runner handed to every adapter
func WithRunner(r executor.Runner) Option {
	return func(d *Detector) { d.cfg.Runner = r }
}

// WithLookup overrides search-path resolution
func WithLookup(fn executor.LookupFunc) Option {
	return func(d *Detector) { d.cfg.Lookup = fn }
}

// WithLogger sets the structured logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(d *Detector) {
		if l != nil {
			d.cfg.Logger = l
		}
	}
}

// WithConstructors replaces the adapter constructors, in priority order
func WithConstructors(cs ...backend.Constructor) Option {
	return func(d *Detector) { d.constructors = cs }
}

// WithDisabled excludes backends by display name or command
func WithDisabled(names ...string) Option {
	return func(d *Detector) { d.disabled = append(d.disabled, names...) }
}

// NewDetector creates a detector. Without WithRunner a default Executor is used.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		cfg: backend.Config{
			Lookup: executor.CommandExists,
			Logger: zap.NewNop().Sugar(),
		},
		constructors: backend.Constructors,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.cfg.Runner == nil {
		d.cfg.Runner = executor.New(executor.WithLogger(d.cfg.Logger))
	}
	return d
}

// DetectAll returns the available adapters in priority order
func (d *Detector) DetectAll() []core.PackageManager {
	d.once.Do(d.detect)
	return append([]core.PackageManager(nil), d.available...)
}

// Available is an alias of DetectAll
func (d *Detector) Available() []core.PackageManager {
	return d.DetectAll()
}

// Descriptors describes every constructed adapter, available or not
func (d *Detector) Descriptors() []core.Descriptor {
	d.once.Do(d.detect)
	out := make([]core.Descriptor, 0, len(d.all))
	for _, pm := range d.all {
		out = append(out, core.Describe(pm))
	}
	return out
}

// ByName finds an available adapter by display name or command, ignoring case
func (d *Detector) ByName(name string) (core.PackageManager, bool) {
	name = strings.TrimSpace(name)
	for _, pm := range d.DetectAll() {
		if matches(pm, name) {
			return pm, true
		}
	}
	return nil, false
}

func (d *Detector) detect() {
	log := d.cfg.Logger
	for i, construct := range d.constructors {
		pm, err := d.build(construct)
		if err != nil {
			log.Warnw("backend error", "index", i, "error", err)
			continue
		}
		if d.isDisabled(pm) {
			log.Debugw("backend disabled", "backend", pm.Name())
			continue
		}

		d.all = append(d.all, pm)
		if !pm.Available() {
			log.Debugw("backend not found", "backend", pm.Name(), "command", pm.Command())
			continue
		}
		log.Infow("backend detected", "backend", pm.Name(), "command", pm.Command())
		d.available = append(d.available, pm)
	}
}

// build isolates a constructor so a failing adapter cannot abort detection
func (d *Detector) build(construct backend.Constructor) (pm core.PackageManager, err error) {
	defer func() {
		if r := recover(); r != nil {
			pm, err = nil, fmt.Errorf("constructor panicked: %v", r)
		}
	}()

	cfg := d.cfg
	pm, err = construct(&cfg)
	if err == nil && pm == nil {
		err = fmt.Errorf("constructor returned no adapter")
	}
	return pm, err
}

func (d *Detector) isDisabled(pm core.PackageManager) bool {
	for _, name := range d.disabled {
		if matches(pm, name) {
			return true
		}
	}
	return false
}

func matches(pm core.PackageManager, name string) bool {
	return strings.EqualFold(pm.Name(), name) || strings.EqualFold(pm.Command(), name)
}
