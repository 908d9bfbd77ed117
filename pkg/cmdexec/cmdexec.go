// Package cmdexec provides external command execution for pipguard.
// It runs package-manager invocations through the user's shell with
// templated arguments, optional timeouts, and process-group cleanup.
package cmdexec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pipguard/pipguard/pkg/verbose"
	"github.com/pipguard/pipguard/pkg/warnings"
)

// getShell returns the user's shell and args to run a command.
//
// This function checks the SHELL environment variable first (Unix systems),
// and falls back to platform-specific defaults if not set. Using the user's
// shell ensures that aliases and shell configurations are available during
// command execution.
//
// Returns:
//   - shell: The path to the shell executable
//   - args: The shell arguments needed to execute a command string
func getShell() (shell string, args []string) {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh, []string{"-l", "-c"}
	}

	return getDefaultShell()
}

// ExecuteFunc is the function signature for command execution.
//
// Parameters:
//   - command: Command string to execute, may contain {{key}} placeholders
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//   - replacements: Template variable replacements (e.g., {{package}} -> actual name)
//
// Returns:
//   - []byte: Stdout output from the command
//   - error: Any error that occurred during execution
type ExecuteFunc func(command string, timeoutSeconds int, replacements map[string]string) ([]byte, error)

// ExecuteWithContextFunc is the function signature for context-aware command execution.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - command: Command string to execute, may contain {{key}} placeholders
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//   - replacements: Template variable replacements applied to the command string
//
// Returns:
//   - []byte: Stdout output from the command
//   - error: Any error that occurred during execution, including context cancellation
type ExecuteWithContextFunc func(ctx context.Context, command string, timeoutSeconds int, replacements map[string]string) ([]byte, error)

// Execute is the default command execution function.
//
// This variable holds the implementation used for command execution throughout
// the application. It can be replaced with a mock implementation for testing.
var Execute ExecuteFunc = executeCommand

// ExecuteWithContext is the context-aware command execution function.
//
// It allows callers to cancel a blocking package-manager invocation and can
// be replaced with a mock implementation for testing.
var ExecuteWithContext ExecuteWithContextFunc = executeCommandWithContext

// executeCommand executes a command string without external cancellation.
func executeCommand(command string, timeoutSeconds int, replacements map[string]string) ([]byte, error) {
	return executeCommandWithContext(context.Background(), command, timeoutSeconds, replacements)
}

// executeCommandWithContext runs a single templated command through the shell.
//
// It performs the following operations:
//   - Applies {{key}} template replacements with shell escaping
//   - Adds a timeout context when timeoutSeconds > 0
//   - Runs the command through the user's shell in its own process group
//   - Kills the whole process group on timeout to avoid orphaned children
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - command: Command string to execute
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//   - replacements: Template variable replacements applied to the command string
//
// Returns:
//   - []byte: Stdout output from the command
//   - error: Error from the command, enriched with stderr content when available
func executeCommandWithContext(ctx context.Context, command string, timeoutSeconds int, replacements map[string]string) ([]byte, error) {
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("no command provided")
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cmdStr := applyReplacements(command, replacements)

	if timeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
		defer cancel()
	}

	shell, shellArgs := getShell()
	args := append(shellArgs, cmdStr)

	cmd := exec.CommandContext(ctx, shell, args...)
	cmd.Env = os.Environ()

	// Run command in its own process group so we can kill all children on timeout
	setProcGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	verbose.CommandExec(cmdStr, ".")

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded && timeoutSeconds > 0 {
			// Kill entire process group to ensure no orphaned child processes
			if killErr := killProcGroup(cmd); killErr != nil {
				warnings.Warnf("Warning: failed to kill process group on timeout: %v\n", killErr)
			}
			warnings.Warnf("command timed out after %d seconds\n", timeoutSeconds)
			return nil, fmt.Errorf("command timed out after %d seconds: %w", timeoutSeconds, err)
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		verbose.CommandResult(cmdStr, 1, errMsg)
		if errMsg != "" {
			return nil, fmt.Errorf("%w: %s", err, errMsg)
		}
		return nil, err
	}

	verbose.CommandResult(cmdStr, 0, "")
	return stdout.Bytes(), nil
}

// applyReplacements applies template replacements to the command string.
//
// Template placeholders in the format {{key}} are replaced with their
// corresponding values from the replacements map. All values are
// shell-escaped to prevent command injection.
//
// Parameters:
//   - command: Command string containing template placeholders
//   - replacements: Map of template keys to replacement values
//
// Returns:
//   - string: Command string with all placeholders replaced and values shell-escaped
func applyReplacements(command string, replacements map[string]string) string {
	result := command
	for key, value := range replacements {
		placeholder := "{{" + key + "}}"
		escapedValue := shellEscape(value)
		result = strings.ReplaceAll(result, placeholder, escapedValue)
	}
	return result
}

// shellEscape escapes a string for safe use in shell commands.
//
// Values consisting solely of safe characters (alphanumeric, dash,
// underscore, dot, slash, at, colon, plus, equal) are returned unquoted
// for readability. Everything else is wrapped in single quotes with
// embedded single quotes escaped.
//
// Parameters:
//   - s: String to escape for shell usage
//
// Returns:
//   - string: Shell-safe escaped string, either quoted or unquoted if safe
func shellEscape(s string) string {
	if s == "" {
		return "''"
	}

	needsEscape := false
	for _, r := range s {
		if !isShellSafe(r) {
			needsEscape = true
			break
		}
	}

	if !needsEscape {
		return s
	}

	// Single quotes preserve everything literally except single quotes themselves.
	// For those: close the quote, add an escaped quote, reopen.
	var escaped strings.Builder
	escaped.WriteRune('\'')
	for _, r := range s {
		if r == '\'' {
			escaped.WriteString("'\\''")
		} else {
			escaped.WriteRune(r)
		}
	}
	escaped.WriteRune('\'')
	return escaped.String()
}

// isShellSafe returns true if the character is safe to use unquoted in shell.
//
// Parameters:
//   - r: Rune (character) to check
//
// Returns:
//   - bool: true if the character is safe to use unquoted, false otherwise
func isShellSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == '.' ||
		r == '/' || r == '@' || r == ':' ||
		r == '+' || r == '='
}

// BuildReplacements creates a replacement map for common template variables.
//
// This is a convenience function that creates a map with the standard
// template variable keys (package, spec) for use with command execution.
//
// Parameters:
//   - pkg: Package name to use for {{package}} template
//   - spec: Install spec ("name==version") to use for {{spec}} template
//
// Returns:
//   - map[string]string: Map of template keys to replacement values
func BuildReplacements(pkg, spec string) map[string]string {
	return map[string]string{
		"package": pkg,
		"spec":    spec,
	}
}
