// pkg/core/result.go
package core

import "fmt"

// ExitFault is the exit code reserved for executor-level failures:
// timeouts, cancellation, launch errors and unknown operations.
const ExitFault = -1

// Messages placed in CommandResult.Stderr by the executor
const (
	MsgTimedOut  = "Command timed out"
	MsgCancelled = "Command cancelled"
	MsgEmptyArgv = "empty command"

	MsgElevationRefused = "Authorization failed"
)

// CommandResult is the outcome of one external invocation
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Faulted builds a result for an executor-level failure
func Faulted(msg string) CommandResult {
	return CommandResult{ExitCode: ExitFault, Stderr: msg}
}

// Success reports whether the command exited with status 0
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// Fault reports whether the executor itself failed (timeout, launch error)
func (r CommandResult) Fault() bool {
	return r.ExitCode == ExitFault
}

func (r CommandResult) String() string {
	return fmt.Sprintf("exit %d", r.ExitCode)
}
