// Package verbose provides opt-in debug logging for pipguard.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging so debug messages are printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Passing nil leaves the current writer unchanged. Tests use this to
// capture debug output in a buffer.
//
// Parameters:
//   - w: The io.Writer to use for output
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter returns the current writer with proper locking.
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Printf prints a formatted verbose message if enabled.
//
// Messages are written with a [DEBUG] prefix and a trailing newline.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Infof(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// CommandExec logs command execution details if enabled.
//
// Parameters:
//   - cmd: The command string being executed
//   - workDir: The working directory for command execution
func CommandExec(cmd, workDir string) {
	if IsEnabled() {
		w := getWriter()
		_, _ = fmt.Fprintf(w, "[DEBUG] Executing: %s\n", cmd)
		_, _ = fmt.Fprintf(w, "        Working dir: %s\n", workDir)
	}
}

// CommandResult logs command execution results if enabled.
//
// Long commands are truncated for readability; at most five lines of
// command output are echoed.
//
// Parameters:
//   - cmd: The command string that was executed
//   - exitCode: The exit code returned by the command (0 for success)
//   - output: The command output (stdout/stderr)
func CommandResult(cmd string, exitCode int, output string) {
	if !IsEnabled() {
		return
	}
	w := getWriter()
	if exitCode == 0 {
		_, _ = fmt.Fprintf(w, "[DEBUG] Command succeeded: %s\n", truncate(cmd, 60))
	} else {
		_, _ = fmt.Fprintf(w, "[DEBUG] Command failed (exit %d): %s\n", exitCode, truncate(cmd, 60))
	}
	if output != "" {
		lines := strings.Split(strings.TrimSpace(output), "\n")
		if len(lines) > 5 {
			for _, line := range lines[:3] {
				_, _ = fmt.Fprintf(w, "        | %s\n", truncate(line, 100))
			}
			_, _ = fmt.Fprintf(w, "        | ... (%d more lines)\n", len(lines)-3)
		} else {
			for _, line := range lines {
				_, _ = fmt.Fprintf(w, "        | %s\n", truncate(line, 100))
			}
		}
	}
}

// PackageEvaluated logs the policy verdict for a package if enabled.
//
// Parameters:
//   - name: The package name (lowercased)
//   - version: The current package version
//   - status: The verdict (OK, WARNING, DEPRECATED)
func PackageEvaluated(name, version, status string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Evaluated '%s==%s': %s\n", name, version, status)
	}
}

// truncate shortens a string to maxLen, appending "..." when truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
