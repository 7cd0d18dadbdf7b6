//go:build unix

package executor

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

func setProcessGroup(cmd *exec.Cmd, own bool) {
	if own {
		cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	}
}

// killProcess kills the child, and its whole group when it leads one, so
// helpers spawned by the package manager do not outlive the timeout.
func killProcess(cmd *exec.Cmd, group bool) error {
	if group {
		if err := unix.Kill(-cmd.Process.Pid, unix.SIGKILL); err == nil {
			return nil
		}
	}
	return cmd.Process.Kill()
}

func terminateProcess(cmd *exec.Cmd) error {
	return cmd.Process.Signal(unix.SIGTERM)
}

func signalNumber(exitErr *exec.ExitError) (int, bool) {
	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return 0, false
	}
	return int(ws.Signal()), true
}
