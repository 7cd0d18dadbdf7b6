// pkg/executor/executor.go
package executor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/orange-update/orange/pkg/core"
)

// New creates an Executor. Defaults: 300s timeout, automatic elevation.
func New(opts ...Option) *Executor {
	e := &Executor{
		timeout:   core.DefaultTimeout,
		mode:      ElevateAuto,
		lookup:    CommandExists,
		terminal:  stdinIsTerminal,
		euid:      os.Geteuid,
		logger:    zap.NewNop().Sugar(),
		waitDelay: 5 * time.Second,
		killGrace: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Timeout returns the configured per-invocation ceiling
func (e *Executor) Timeout() time.Duration {
	return e.timeout
}

// LookPath reports whether name resolves on the host search path
func (e *Executor) LookPath(name string) bool {
	return e.lookup(name)
}

// Execute runs argv and waits for it to exit or time out.
//
// It never returns a Go error: launch failures, timeouts and cancellation are
// reported as ExitCode -1 with a message in Stderr.
func (e *Executor) Execute(ctx context.Context, argv []string, elevate bool) core.CommandResult {
	if len(argv) == 0 || argv[0] == "" {
		return core.Faulted(core.MsgEmptyArgv)
	}

	full := e.Argv(argv, elevate)
	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	// Interactive sudo reads the password from the controlling terminal,
	// which only works from the foreground process group.
	ownGroup := full[0] != "sudo"

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(full[0], full[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = e.waitDelay
	setProcessGroup(cmd, ownGroup)

	start := time.Now()
	e.logger.Debugw("exec", "argv", full)

	if err := cmd.Start(); err != nil {
		e.logger.Warnw("exec launch failed", "argv", full, "error", err)
		return core.Faulted(err.Error())
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		res := core.CommandResult{
			ExitCode: exitCode(err),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
		if res.ExitCode == core.ExitFault {
			res.Stderr = appendMessage(res.Stderr, err.Error())
		}
		if full[0] != argv[0] && elevationRefused(full[0], res) {
			e.logger.Warnw("elevation refused", "helper", full[0], "exit", res.ExitCode)
			msg := strings.TrimSpace(res.Stderr)
			if msg == "" {
				msg = core.MsgElevationRefused
			}
			return core.Faulted(msg)
		}
		e.logger.Debugw("exec finished", "argv", full, "exit", res.ExitCode, "duration", time.Since(start))
		return res

	case <-runCtx.Done():
		e.abort(cmd, done, ownGroup)

		msg := core.MsgTimedOut
		if errors.Is(runCtx.Err(), context.Canceled) {
			msg = core.MsgCancelled
		}
		e.logger.Warnw("exec aborted", "argv", full, "reason", msg, "duration", time.Since(start))
		return core.Faulted(msg)
	}
}

// abort stops a command that outlived its context. A process group is
// killed outright. sudo runs in the caller's group, so it gets SIGTERM
// first, which it relays to the elevated command, and SIGKILL only after
// the grace period.
func (e *Executor) abort(cmd *exec.Cmd, done <-chan error, ownGroup bool) {
	if !ownGroup {
		if err := terminateProcess(cmd); err != nil {
			e.logger.Debugw("exec terminate failed", "pid", cmd.Process.Pid, "error", err)
		}
		select {
		case <-done:
			return
		case <-time.After(e.killGrace):
		}
	}

	if err := killProcess(cmd, ownGroup); err != nil {
		e.logger.Warnw("exec kill failed", "pid", cmd.Process.Pid, "error", err)
	}
	<-done
}

// elevationRefused reports whether the helper gave up before running the
// command. pkexec exits 126 when the prompt is dismissed and 127 when
// authorization fails; sudo exits 1 after failed authentication.
func elevationRefused(helper string, res core.CommandResult) bool {
	switch helper {
	case "pkexec":
		return res.ExitCode == 126 || res.ExitCode == 127
	case "sudo":
		if res.ExitCode != 1 {
			return false
		}
		stderr := strings.ToLower(res.Stderr)
		for _, marker := range sudoAuthFailures {
			if strings.Contains(stderr, marker) {
				return true
			}
		}
	}
	return false
}

// Argv returns argv with the elevation helper prepended when the policy
// requires it. Flatpak and Snap are never elevated.
func (e *Executor) Argv(argv []string, elevate bool) []string {
	if !elevate || len(argv) == 0 || userScoped[argv[0]] {
		return argv
	}

	helper := e.Helper()
	if helper == "" {
		return argv
	}

	out := make([]string, 0, len(argv)+1)
	out = append(out, helper)
	return append(out, argv...)
}

// Helper returns the elevation helper privileged commands are wrapped with,
// or "" when they run as is
func (e *Executor) Helper() string {
	switch e.mode {
	case ElevateNone:
		return ""
	case ElevatePkexec:
		return "pkexec"
	case ElevateSudo:
		return "sudo"
	}

	if e.euid() == 0 {
		return ""
	}

	preferred := []string{"pkexec", "sudo"}
	if e.terminal() {
		preferred = []string{"sudo", "pkexec"}
	}
	for _, h := range preferred {
		if e.lookup(h) {
			return h
		}
	}

	e.logger.Warnw("no elevation helper found; running unprivileged", "tried", preferred)
	return ""
}

// exitCode maps a Wait error to an exit status. Signals map to 128+n like a shell.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		if sig, ok := signalNumber(exitErr); ok {
			return 128 + sig
		}
	}
	return core.ExitFault
}

func appendMessage(stderr, msg string) string {
	if stderr == "" {
		return msg
	}
	return stderr + "\n" + msg
}

// CommandExists checks if a command is available in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
