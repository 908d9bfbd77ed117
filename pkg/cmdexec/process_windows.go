//go:build windows

package cmdexec

import (
	"os/exec"
)

// setProcGroup is a no-op on Windows.
//
// Windows handles process groups through job objects, and exec.CommandContext
// already terminates the process adequately there. This function exists to
// keep the Unix and Windows call sites identical.
//
// Parameters:
//   - cmd: The command to configure (no-op on Windows)
func setProcGroup(cmd *exec.Cmd) {
	// No-op on Windows - exec.CommandContext handles this
}

// killProcGroup kills the process on Windows.
//
// Killing the parent process typically terminates children on Windows, so
// this simply calls Process.Kill on the command's process.
//
// Parameters:
//   - cmd: The command whose process should be killed
//
// Returns:
//   - error: Error if the kill operation fails, nil if successful or process is nil
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
