// errors.go
package orange

import (
	"errors"
	"fmt"
	"strings"

	"github.com/orange-update/orange/pkg/core"
)

var (
	// ErrNoBackendSelected indicates an operation was attempted before Select
	ErrNoBackendSelected = errors.New("no backend selected")

	// ErrBackendNotAvailable indicates the backend is unknown or not installed
	ErrBackendNotAvailable = errors.New("backend not available")

	// ErrEmptyQuery indicates a blank search query
	ErrEmptyQuery = errors.New("search query is required")

	// ErrInvalidPackage indicates the package specification is invalid
	ErrInvalidPackage = errors.New("invalid package")

	// ErrCommandFailed indicates the native tool exited non-zero
	ErrCommandFailed = errors.New("command failed")

	// ErrExecutorFault indicates the command could not run to completion:
	// timeout, cancellation or launch failure
	ErrExecutorFault = errors.New("executor fault")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// commandError carries the native tool's diagnostic. It matches
// ErrCommandFailed, and ErrExecutorFault when the exit code is -1.
type commandError struct {
	msg   string
	code  int
	fault bool
}

func (e *commandError) Error() string {
	return e.msg
}

func (e *commandError) Is(target error) bool {
	return target == ErrCommandFailed || (e.fault && target == ErrExecutorFault)
}

// resultError converts a failed command into an *Error. The message is the
// tool's trimmed stderr, which is what users should see.
func resultError(op, pkg string, res core.CommandResult) error {
	if res.Success() {
		return nil
	}

	msg := strings.TrimSpace(res.Stderr)
	if msg == "" {
		msg = fmt.Sprintf("exit status %d", res.ExitCode)
	}
	return &Error{Op: op, Package: pkg, Err: &commandError{msg: msg, code: res.ExitCode, fault: res.Fault()}}
}

// Message returns the user-facing text of err: the tool's diagnostic for
// command failures, err.Error() otherwise
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ce *commandError
	if errors.As(err, &ce) {
		return ce.msg
	}
	return err.Error()
}

// ExitCode returns the exit code carried by a command failure, or 1 for any
// other non-nil error
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ce *commandError
	if errors.As(err, &ce) && ce.code > 0 {
		return ce.code
	}
	return 1
}
