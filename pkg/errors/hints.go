package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "executable file not found",
		Hint:       "pip is not installed or not in PATH",
		Resolution: "Install Python (https://python.org/downloads/) or set pip.command in .pipguard.yml",
	},
	{
		Pattern:    "command not found",
		Hint:       "pip is not installed or not in PATH",
		Resolution: "Install Python (https://python.org/downloads/) or set pip.command in .pipguard.yml",
	},
	{
		Pattern:    "command timed out",
		Hint:       "pip command took too long",
		Resolution: "Use --no-timeout or raise pip.timeout_seconds in .pipguard.yml",
	},
	{
		Pattern:    "no matching distribution",
		Hint:       "Package or version not found on the index",
		Resolution: "Verify the package name and version exist on PyPI",
	},
	{
		Pattern:    "could not find a version",
		Hint:       "Requested version is unavailable",
		Resolution: "Check available versions with 'pip index versions <name>'",
	},
	{
		Pattern:    "not installed",
		Hint:       "Package is not present in this environment",
		Resolution: "Run 'pipguard list' to see installed packages",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Use a virtualenv or pass --user to pip via pip.command",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Check .pipguard.yml syntax against the documented schema",
	},
	{
		Pattern:    "network",
		Hint:       "Network connectivity issue",
		Resolution: "Check internet connection and proxy settings",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// RegisterHint adds a custom hint to the registry.
//
// This allows extending the hint system with environment-specific patterns.
//
// Parameters:
//   - pattern: Lowercase substring to match in error messages
//   - hint: Brief description of the issue
//   - resolution: Actionable suggestion for fixing the error
func RegisterHint(pattern, hint, resolution string) {
	CommonErrorHints = append(CommonErrorHints, ErrorHint{
		Pattern:    pattern,
		Hint:       hint,
		Resolution: resolution,
	})
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	for _, hint := range CommonErrorHints {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(hint.Pattern)) {
			return errStr + "\n  \U0001F4A1 " + hint.Hint + ": " + hint.Resolution
		}
	}

	return errStr
}
