//go:build !unix

package executor

import "os/exec"

func setProcessGroup(*exec.Cmd, bool) {}

func killProcess(cmd *exec.Cmd, _ bool) error {
	return cmd.Process.Kill()
}

func terminateProcess(cmd *exec.Cmd) error {
	return cmd.Process.Kill()
}

func signalNumber(*exec.ExitError) (int, bool) {
	return 0, false
}
