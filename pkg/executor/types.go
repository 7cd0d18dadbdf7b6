// pkg/executor/types.go
package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/orange-update/orange/pkg/core"
)

// Runner runs one external command. Backends depend on this interface so
// tests can substitute canned output.
type Runner interface {
	Execute(ctx context.Context, argv []string, elevate bool) core.CommandResult
}

// ElevationMode selects how privileged invocations are wrapped
type ElevationMode string

const (
	// ElevateAuto uses no helper as root, sudo on a terminal, pkexec otherwise
	ElevateAuto ElevationMode = "auto"
	// ElevatePkexec always wraps with pkexec (polkit graphical prompt)
	ElevatePkexec ElevationMode = "pkexec"
	// ElevateSudo always wraps with sudo
	ElevateSudo ElevationMode = "sudo"
	// ElevateNone never wraps; the caller is expected to already be root
	ElevateNone ElevationMode = "none"
)

// ParseElevationMode validates a mode read from flags or config
func ParseElevationMode(s string) (ElevationMode, error) {
	switch m := ElevationMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ElevateAuto, nil
	case ElevateAuto, ElevatePkexec, ElevateSudo, ElevateNone:
		return m, nil
	default:
		return "", fmt.Errorf("unknown elevation mode %q (want auto, pkexec, sudo or none)", s)
	}
}

// LookupFunc reports whether a command resolves on the host search path
type LookupFunc func(name string) bool

// userScoped lists managers that operate per user and are never elevated
var userScoped = map[string]bool{
	"flatpak": true,
	"snap":    true,
}

// sudoAuthFailures are stderr fragments sudo prints when it refuses to run
var sudoAuthFailures = []string{
	"incorrect password",
	"a password is required",
	"is not in the sudoers file",
}

// Executor runs external commands with a timeout and an elevation policy.
// It holds no per-call state and is safe for concurrent use.
type Executor struct {
	timeout   time.Duration
	mode      ElevationMode
	lookup    LookupFunc
	terminal  func() bool
	euid      func() int
	logger    *zap.SugaredLogger
	waitDelay time.Duration
	killGrace time.Duration
}

// Option configures an Executor
type Option func(*Executor)

// WithTimeout sets the per-invocation ceiling
func WithTimeout(d time.Duration) Option {
	return func(e *Executor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithElevation sets the elevation mode
func WithElevation(m ElevationMode) Option {
	return func(e *Executor) { e.mode = m }
}

// WithLookup overrides search-path resolution
func WithLookup(fn LookupFunc) Option {
	return func(e *Executor) { e.lookup = fn }
}

// WithTerminal overrides the interactive-terminal check used by ElevateAuto
func WithTerminal(fn func() bool) Option {
	return func(e *Executor) { e.terminal = fn }
}

// WithEUID overrides the effective user ID check used by ElevateAuto
func WithEUID(fn func() int) Option {
	return func(e *Executor) { e.euid = fn }
}

// WithLogger sets the structured logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}
