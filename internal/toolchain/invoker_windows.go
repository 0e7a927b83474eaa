//go:build windows

package toolchain

import (
	"os/exec"
	"strconv"
)

// setProcessGroup is a no-op on Windows; taskkill handles the tree.
func setProcessGroup(cmd *exec.Cmd) {}

// killProcessTree terminates the child and its descendants via taskkill.
func killProcessTree(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	kill := exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(cmd.Process.Pid))
	return kill.Run()
}
