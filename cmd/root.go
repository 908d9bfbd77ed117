// Package cmd implements the command-line interface for pipguard.
// It provides commands for scanning installed pip packages against the
// deprecation policy, listing the environment, inspecting the policy
// table, and performing lifecycle operations (install, uninstall, upgrade).
package cmd

import (
	stderrors "errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipguard/pipguard/pkg/errors"
	"github.com/pipguard/pipguard/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool

var rootCmd = &cobra.Command{
	Use:   "pipguard",
	Short: "Pip environment scanner and deprecation guard",
	Long:  `Scan installed pip packages against a minimum-version policy and manage their lifecycle.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput()
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Partial failure (some packages failed during upgrade --all)
//   - 2: Complete failure
//   - 3: Configuration or validation error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)

		// Check for partial success
		var partialErr *errors.PartialSuccessError
		if stderrors.As(err, &partialErr) {
			code = errors.ExitPartialFailure
			verbose.Infof("Exit code %d: partial success - %d succeeded, %d failed", code, partialErr.Succeeded, partialErr.Failed)
		} else {
			verbose.Infof("Exit code %d: %v", code, err)
		}

		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")

	// Add -v/--version as a LOCAL flag (not persistent) so it only works on root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	// Commands ordered logically: info → policy → workflow (scan → list → lifecycle)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(policyCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(upgradeCmd)
}
