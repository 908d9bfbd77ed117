//go:build unix

package cmdexec

import (
	"os/exec"
	"syscall"
)

// setProcGroup configures the command to run in its own process group.
//
// On Unix systems, this sets the Setpgid flag so the command and every
// child it spawns share a process group. A timed-out pip invocation can
// then be killed as a unit.
//
// Parameters:
//   - cmd: The command to configure for process group execution
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// killProcGroup kills the entire process group for the given process.
//
// Sends SIGKILL to the process group (negative PID) so no child processes
// survive a timeout.
//
// Parameters:
//   - cmd: The command whose process group should be killed
//
// Returns:
//   - error: Error if the kill operation fails, nil if successful or process is nil
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	// Negative PID means kill the entire process group
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
