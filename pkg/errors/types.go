// Package errors defines the error taxonomy and exit codes for pipguard.
// It distinguishes external pip invocation failures from configuration
// errors and partial batch failures, so scripts can branch on exit codes.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
// These codes allow scripts to distinguish between different failure modes.
const (
	// ExitSuccess indicates all operations completed successfully.
	ExitSuccess = 0

	// ExitPartialFailure indicates some operations failed but others succeeded.
	// Used by upgrade --all when a subset of packages fails.
	ExitPartialFailure = 1

	// ExitFailure indicates all operations failed or a critical error occurred.
	// This includes pip invocation failures and complete upgrade failures.
	ExitFailure = 2

	// ExitConfigError indicates a configuration or validation error.
	// The command could not proceed due to invalid config or arguments.
	ExitConfigError = 3
)

// ExitError represents a command termination with a specific exit code.
//
// Use this error when a command needs to exit with a non-zero status
// while providing context about what went wrong.
//
// Fields:
//   - Code: Exit code (use the Exit* constants)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
type ExitError struct {
	// Code is the exit code for the command.
	// Standard codes: 0=success, 1=partial failure, 2=failure, 3=config error.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (use ExitSuccess, ExitPartialFailure, ExitFailure, ExitConfigError)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess. If err is an ExitError, returns its
// code. Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ExitError: The ExitError if err is one, nil otherwise
//   - bool: true if err is an ExitError
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// PartialSuccessError indicates that some operations succeeded while others failed.
//
// upgrade --all uses this when a subset of packages fails to upgrade. The
// command exits with ExitPartialFailure rather than aborting the batch.
//
// Fields:
//   - Succeeded: Count of successful operations
//   - Failed: Count of failed operations
//   - Errors: Slice of errors from failed operations
type PartialSuccessError struct {
	// Succeeded is the number of operations that completed successfully.
	Succeeded int

	// Failed is the number of operations that failed.
	Failed int

	// Errors contains all errors from failed operations.
	Errors []error
}

// Error implements the error interface.
//
// Returns a summary message in the format "X succeeded, Y failed".
//
// Returns:
//   - string: Summary of succeeded and failed operation counts
func (e *PartialSuccessError) Error() string {
	return fmt.Sprintf("%d succeeded, %d failed", e.Succeeded, e.Failed)
}

// NewPartialSuccessError creates a PartialSuccessError with the given counts and errors.
//
// Parameters:
//   - succeeded: Number of successful operations
//   - failed: Number of failed operations
//   - errs: Slice of errors from failed operations
//
// Returns:
//   - *PartialSuccessError: New partial success error
func NewPartialSuccessError(succeeded, failed int, errs []error) *PartialSuccessError {
	return &PartialSuccessError{
		Succeeded: succeeded,
		Failed:    failed,
		Errors:    errs,
	}
}

// IsPartialSuccess checks if err is a PartialSuccessError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *PartialSuccessError: The PartialSuccessError if err is one, nil otherwise
//   - bool: true if err is a PartialSuccessError
func IsPartialSuccess(err error) (*PartialSuccessError, bool) {
	var pse *PartialSuccessError
	if errors.As(err, &pse) {
		return pse, true
	}
	return nil, false
}

// ExecError indicates an external pip invocation failed.
//
// This wraps the underlying process error so callers can distinguish
// "pip itself failed" from parse or policy conditions. Listing retrieval
// treats this as fatal; mutating operations treat it as a per-package
// failure.
//
// Fields:
//   - Operation: The pip operation that was attempted ("freeze", "install", ...)
//   - Package: Name or spec of the affected package, empty for freeze
//   - Err: The underlying execution error
type ExecError struct {
	// Operation is the attempted pip operation.
	Operation string

	// Package is the name or spec of the affected package.
	// Empty for environment-wide operations like freeze.
	Package string

	// Err is the underlying execution error.
	Err error
}

// Error implements the error interface.
//
// Formats the message based on available fields. If Package is set, it is
// included as "operation package: cause"; otherwise "operation: cause".
//
// Returns:
//   - string: Formatted error message
func (e *ExecError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("pip %s %s: %v", e.Operation, e.Package, e.Err)
	}
	return fmt.Sprintf("pip %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying execution error
func (e *ExecError) Unwrap() error {
	return e.Err
}

// NewExecError creates an ExecError for a failed pip invocation.
//
// Parameters:
//   - operation: The pip operation that was attempted
//   - pkg: Name or spec of the affected package (optional)
//   - err: The underlying execution error
//
// Returns:
//   - *ExecError: New execution error
func NewExecError(operation, pkg string, err error) *ExecError {
	return &ExecError{Operation: operation, Package: pkg, Err: err}
}

// IsExecError checks if err is an ExecError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ExecError: The ExecError if err is one, nil otherwise
//   - bool: true if err is an ExecError
func IsExecError(err error) (*ExecError, bool) {
	var ee *ExecError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}
