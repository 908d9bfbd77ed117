package cmd

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipguard/pipguard/pkg/errors"
	"github.com/pipguard/pipguard/pkg/verbose"
)

// TestPersistentPreRunVerbose tests the behavior of PersistentPreRun with verbose flag.
//
// It verifies:
//   - Verbose mode is enabled when verboseFlag is set to true
func TestPersistentPreRunVerbose(t *testing.T) {
	// Save and restore globals
	oldVerbose := verboseFlag
	defer func() {
		verboseFlag = oldVerbose
		verbose.Disable()
	}()

	verboseFlag = true
	rootCmd.PersistentPreRun(rootCmd, []string{})

	assert.True(t, verbose.IsEnabled())
}

// TestPersistentPreRunNotVerbose tests the behavior of PersistentPreRun without verbose flag.
//
// It verifies:
//   - Verbose mode is not enabled when verboseFlag is false
func TestPersistentPreRunNotVerbose(t *testing.T) {
	// Save and restore globals
	oldVerbose := verboseFlag
	defer func() {
		verboseFlag = oldVerbose
		verbose.Disable()
	}()

	verboseFlag = false
	rootCmd.PersistentPreRun(rootCmd, []string{})

	assert.False(t, verbose.IsEnabled())
}

// TestExecuteUnknownCommand tests exit code mapping for command errors.
//
// It verifies:
//   - An unknown subcommand exits with the failure code
//   - exitFunc receives the code instead of os.Exit terminating the test
func TestExecuteUnknownCommand(t *testing.T) {
	oldArgs := os.Args
	oldExit := exitFunc
	defer func() {
		os.Args = oldArgs
		exitFunc = oldExit
		rootCmd.SetErr(nil)
		rootCmd.SetOut(nil)
	}()

	exitCode := -1
	exitFunc = func(code int) { exitCode = code }
	os.Args = []string{"pipguard", "no-such-command"}
	rootCmd.SetErr(io.Discard)
	rootCmd.SetOut(io.Discard)

	Execute()

	assert.Equal(t, errors.ExitFailure, exitCode)
}

// TestRootHelp tests the root command with no arguments.
//
// It verifies:
//   - Running without a subcommand prints usage and succeeds
func TestRootHelp(t *testing.T) {
	oldArgs := os.Args
	defer func() {
		os.Args = oldArgs
		rootCmd.SetOut(nil)
	}()

	os.Args = []string{"pipguard"}
	rootCmd.SetOut(io.Discard)

	err := ExecuteTest()
	assert.NoError(t, err)
}

// TestExecuteWithPartialSuccessMapping tests partial-success detection.
//
// It verifies:
//   - A wrapped PartialSuccessError maps to the partial failure exit code
func TestExecuteWithPartialSuccessMapping(t *testing.T) {
	err := errors.NewExitError(errors.ExitPartialFailure,
		errors.NewPartialSuccessError(2, 1, nil))

	partial, ok := errors.IsPartialSuccess(err)
	assert.True(t, ok)
	assert.Equal(t, 2, partial.Succeeded)
	assert.Equal(t, 1, partial.Failed)
	assert.Equal(t, errors.ExitPartialFailure, errors.GetExitCode(err))
}
