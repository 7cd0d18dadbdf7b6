// pkg/backend/types.go
package backend

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/orange-update/orange/pkg/core"
	"github.com/orange-update/orange/pkg/executor"
)

// ErrNoRunner is returned by constructors given a Config without a Runner
var ErrNoRunner = errors.New("backend: no command runner configured")

// Config holds what every backend needs to reach the host
type Config struct {
	// Runner executes the native tool
	Runner executor.Runner

	// Lookup resolves binaries on PATH; defaults to executor.CommandExists
	Lookup executor.LookupFunc

	// Logger for parse diagnostics; defaults to a no-op logger
	Logger *zap.SugaredLogger
}

// Constructor builds one backend. The detector calls every constructor in
// priority order.
type Constructor func(cfg *Config) (core.PackageManager, error)

// Constructors lists the supported backends in detection priority order
var Constructors = []Constructor{
	func(cfg *Config) (core.PackageManager, error) { return NewAptBackend(cfg) },
	func(cfg *Config) (core.PackageManager, error) { return NewDnfBackend(cfg) },
	func(cfg *Config) (core.PackageManager, error) { return NewPacmanBackend(cfg) },
	func(cfg *Config) (core.PackageManager, error) { return NewFlatpakBackend(cfg) },
	func(cfg *Config) (core.PackageManager, error) { return NewSnapBackend(cfg) },
}

// base carries the immutable state shared in shape by every backend
type base struct {
	runner    executor.Runner
	logger    *zap.SugaredLogger
	available bool

	// noMatches recognizes the non-zero exits a tool uses for "nothing found"
	noMatches func(core.CommandResult) bool
}

func newBase(cfg *Config, command string) (base, error) {
	if cfg == nil || cfg.Runner == nil {
		return base{}, ErrNoRunner
	}

	lookup := cfg.Lookup
	if lookup == nil {
		lookup = executor.CommandExists
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return base{
		runner:    cfg.Runner,
		logger:    logger,
		available: lookup(command),
	}, nil
}

// Available reports whether the backend binary was found at construction
func (b base) Available() bool {
	return b.available
}

// mutate runs a state-changing command with elevation
func (b base) mutate(ctx context.Context, argv []string) core.CommandResult {
	return b.runner.Execute(ctx, argv, true)
}

// query runs a read-only command and parses its stdout. A failed command
// yields no records and is reported to the context's QueryStatus.
func (b base) query(ctx context.Context, argv []string, parse func(string) []core.Package) []core.Package {
	res := b.runner.Execute(ctx, argv, false)
	if !res.Success() && !res.Fault() && b.noMatches != nil && b.noMatches(res) {
		return []core.Package{}
	}
	if !res.Success() {
		b.logger.Warnw("query failed", "argv", argv, "exit", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
		core.ReportQuery(ctx, res)
		return []core.Package{}
	}

	pkgs := parse(res.Stdout)
	b.logger.Debugw("query parsed", "argv", argv, "records", len(pkgs))
	return pkgs
}

// search rejects an empty query without running anything
func (b base) search(ctx context.Context, query string, argv func(string) []string, parse func(string) []core.Package) []core.Package {
	if strings.TrimSpace(query) == "" {
		return []core.Package{}
	}
	return b.query(ctx, argv(query), parse)
}
