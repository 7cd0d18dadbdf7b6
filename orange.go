// orange.go
package orange

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orange-update/orange/pkg/core"
	"github.com/orange-update/orange/pkg/executor"
	"github.com/orange-update/orange/pkg/platform"
	"github.com/orange-update/orange/pkg/registry"
)

// Re-export core types for convenience
type (
	Config         = core.Config
	Package        = core.Package
	CommandResult  = core.CommandResult
	Descriptor     = core.Descriptor
	PackageManager = core.PackageManager
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Manager is the unified front-end over the detected native package
// managers. All methods are safe for concurrent use: state-changing
// operations on one backend are serialized, queries may run in parallel
// with each other.
type Manager struct {
	config   *Config
	detector *platform.Detector
	registry *registry.Registry
	logger   *zap.SugaredLogger
	runner   executor.Runner

	selMu    sync.RWMutex
	selected core.PackageManager

	locksMu sync.Mutex
	locks   map[core.Kind]*sync.RWMutex
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the structured logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithDetector replaces host detection
func WithDetector(d *platform.Detector) Option {
	return func(m *Manager) { m.detector = d }
}

// WithRunner sets the command runner used by the default detector
func WithRunner(r executor.Runner) Option {
	return func(m *Manager) { m.runner = r }
}

// WithRegistry sets the package alias registry
func WithRegistry(r *registry.Registry) Option {
	return func(m *Manager) { m.registry = r }
}

// New creates a Manager. No backend is selected until Select or
// SelectDefault is called.
func New(config *Config, opts ...Option) (*Manager, error) {
	if config == nil {
		config = DefaultConfig()
	}

	m := &Manager{
		config: config,
		logger: zap.NewNop().Sugar(),
		locks:  make(map[core.Kind]*sync.RWMutex),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.detector == nil {
		if m.runner == nil {
			mode, err := executor.ParseElevationMode(config.Elevation)
			if err != nil {
				return nil, fmt.Errorf("initializing executor: %w", err)
			}
			m.runner = executor.New(
				executor.WithTimeout(config.Timeout),
				executor.WithElevation(mode),
				executor.WithLogger(m.logger),
			)
		}
		m.detector = platform.NewDetector(
			platform.WithRunner(m.runner),
			platform.WithLogger(m.logger),
			platform.WithDisabled(config.Disabled...),
		)
	}

	if m.registry == nil && config.Aliases != "" {
		reg, err := registry.Load(config.Aliases)
		if err != nil {
			return nil, fmt.Errorf("loading aliases: %w", err)
		}
		m.registry = reg
	}

	return m, nil
}

// Detect describes every supported backend with its availability
func (m *Manager) Detect() []Descriptor {
	return m.detector.Descriptors()
}

// Available describes the backends present on this host, in priority order
func (m *Manager) Available() []Descriptor {
	pms := m.detector.DetectAll()
	out := make([]Descriptor, 0, len(pms))
	for _, pm := range pms {
		out = append(out, core.Describe(pm))
	}
	return out
}

// Backends returns the available adapters in priority order
func (m *Manager) Backends() []PackageManager {
	return m.detector.DetectAll()
}

// Select makes the named backend current. Names match case-insensitively
// on display name or command.
func (m *Manager) Select(name string) error {
	pm, ok := m.detector.ByName(name)
	if !ok {
		return &Error{Op: "select", Err: fmt.Errorf("%w: %s", ErrBackendNotAvailable, name)}
	}

	m.selMu.Lock()
	m.selected = pm
	m.selMu.Unlock()

	m.logger.Infow("backend selected", "backend", pm.Name())
	return nil
}

// SelectDefault selects the configured default backend when available,
// otherwise the first detected one
func (m *Manager) SelectDefault() error {
	pm, err := platform.ResolveBackend(m.detector, m.config.DefaultBackend)
	if err != nil {
		if errors.Is(err, platform.ErrNoBackends) {
			return &Error{Op: "select", Err: fmt.Errorf("%w: %v", ErrBackendNotAvailable, err)}
		}
		return &Error{Op: "select", Err: err}
	}

	m.selMu.Lock()
	m.selected = pm
	m.selMu.Unlock()

	m.logger.Infow("backend selected", "backend", pm.Name(), "preferred", m.config.DefaultBackend)
	return nil
}

// Selected returns the current backend
func (m *Manager) Selected() (PackageManager, bool) {
	m.selMu.RLock()
	defer m.selMu.RUnlock()
	return m.selected, m.selected != nil
}

// Backend returns the name of the selected backend, or "" when none is
func (m *Manager) Backend() string {
	if pm, ok := m.Selected(); ok {
		return pm.Name()
	}
	return ""
}

// Resolve translates a canonical package name for the selected backend
func (m *Manager) Resolve(name string) string {
	pm, ok := m.Selected()
	if !ok {
		return name
	}
	return m.registry.Resolve(name, pm.Name())
}

// RefreshIndex updates the selected backend's package index
func (m *Manager) RefreshIndex(ctx context.Context) (CommandResult, error) {
	return m.mutate(ctx, "refresh", "", func(ctx context.Context, pm PackageManager, _ string) CommandResult {
		return pm.RefreshIndex(ctx)
	})
}

// Upgrade upgrades one package, or everything when target is empty
func (m *Manager) Upgrade(ctx context.Context, target string) (CommandResult, error) {
	return m.mutate(ctx, "upgrade", strings.TrimSpace(target), func(ctx context.Context, pm PackageManager, t string) CommandResult {
		return pm.Upgrade(ctx, t)
	})
}

// Install installs a package
func (m *Manager) Install(ctx context.Context, target string) (CommandResult, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return CommandResult{}, &Error{Op: "install", Err: ErrInvalidPackage}
	}
	return m.mutate(ctx, "install", target, func(ctx context.Context, pm PackageManager, t string) CommandResult {
		return pm.Install(ctx, t)
	})
}

// Remove removes a package
func (m *Manager) Remove(ctx context.Context, target string) (CommandResult, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return CommandResult{}, &Error{Op: "remove", Err: ErrInvalidPackage}
	}
	return m.mutate(ctx, "remove", target, func(ctx context.Context, pm PackageManager, t string) CommandResult {
		return pm.Remove(ctx, t)
	})
}

// Search searches the selected backend. The query methods return an empty
// slice with an error wrapping ErrCommandFailed when the native tool failed.
func (m *Manager) Search(ctx context.Context, query string) ([]Package, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &Error{Op: "search", Err: ErrEmptyQuery}
	}
	return m.query(ctx, "search", func(ctx context.Context, pm PackageManager) []Package {
		return pm.Search(ctx, query)
	})
}

// ListInstalled lists packages installed through the selected backend
func (m *Manager) ListInstalled(ctx context.Context) ([]Package, error) {
	return m.query(ctx, "list", func(ctx context.Context, pm PackageManager) []Package {
		return pm.ListInstalled(ctx)
	})
}

// ListUpgradable lists packages with pending updates
func (m *Manager) ListUpgradable(ctx context.Context) ([]Package, error) {
	return m.query(ctx, "list-upgradable", func(ctx context.Context, pm PackageManager) []Package {
		return pm.ListUpgradable(ctx)
	})
}

// mutate runs a state-changing operation under the backend's write lock
func (m *Manager) mutate(ctx context.Context, op, target string, fn func(context.Context, PackageManager, string) CommandResult) (CommandResult, error) {
	pm, ok := m.Selected()
	if !ok {
		return CommandResult{}, &Error{Op: op, Package: target, Err: ErrNoBackendSelected}
	}

	resolved := target
	if target != "" {
		resolved = m.registry.Resolve(target, pm.Name())
	}

	lock := m.lockFor(pm.Kind())
	lock.Lock()
	defer lock.Unlock()

	log := m.logger.With("op", op, "id", uuid.NewString(), "backend", pm.Name())
	if resolved != target {
		log.Debugw("resolved alias", "package", target, "resolved", resolved)
	}
	log.Infow("operation started", "package", resolved)

	res := fn(ctx, pm, resolved)
	if err := resultError(op, target, res); err != nil {
		log.Warnw("operation failed", "exit", res.ExitCode, "error", Message(err))
		return res, err
	}

	log.Infow("operation finished")
	return res, nil
}

// query runs a read-only operation under the backend's read lock
func (m *Manager) query(ctx context.Context, op string, fn func(context.Context, PackageManager) []Package) ([]Package, error) {
	pm, ok := m.Selected()
	if !ok {
		return nil, &Error{Op: op, Err: ErrNoBackendSelected}
	}
	return m.queryOn(ctx, op, pm, fn)
}

// queryOn returns the records fn parsed. When the native tool failed the
// records are empty and the error wraps ErrCommandFailed.
func (m *Manager) queryOn(ctx context.Context, op string, pm PackageManager, fn func(context.Context, PackageManager) []Package) ([]Package, error) {
	lock := m.lockFor(pm.Kind())
	lock.RLock()
	defer lock.RUnlock()

	ctx, status := core.WithQueryStatus(ctx)
	pkgs := fn(ctx, pm)
	log := m.logger.With("op", op, "id", uuid.NewString(), "backend", pm.Name())
	if res, failed := status.Failed(); failed {
		err := resultError(op, "", res)
		log.Warnw("query failed", "exit", res.ExitCode, "error", Message(err))
		return pkgs, err
	}

	log.Debugw("query finished", "records", len(pkgs))
	return pkgs, nil
}

func (m *Manager) lockFor(kind core.Kind) *sync.RWMutex {
	m.locksMu.Lock()
	defer m.locksMu.Unlock()

	l, ok := m.locks[kind]
	if !ok {
		l = &sync.RWMutex{}
		m.locks[kind] = l
	}
	return l
}
