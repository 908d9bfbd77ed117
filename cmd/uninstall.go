package cmd

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pipguard/pipguard/pkg/config"
	"github.com/pipguard/pipguard/pkg/constants"
	"github.com/pipguard/pipguard/pkg/errors"
	"github.com/pipguard/pipguard/pkg/pip"
)

var (
	uninstallDirFlag       string
	uninstallConfigFlag    string
	uninstallNoTimeoutFlag bool
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <name>",
	Short: "Uninstall a package",
	Long:  `Remove a package from the pip environment. Runs pip uninstall with -y so no prompt blocks the command.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVarP(&uninstallDirFlag, "directory", "d", ".", "Directory to search for the config file")
	uninstallCmd.Flags().StringVarP(&uninstallConfigFlag, "config", "c", "", "Config file path")
	uninstallCmd.Flags().BoolVar(&uninstallNoTimeoutFlag, "no-timeout", false, "Disable the pip command timeout")
}

// runUninstall executes the uninstall command.
//
// Parameters:
//   - cmd: Cobra command instance (unused)
//   - args: Command line arguments; args[0] is the package name
//
// Returns:
//   - error: Config errors (exit 3) or uninstall failures (exit 2)
func runUninstall(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := config.LoadConfig(uninstallConfigFlag, uninstallDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	manager := pip.NewManager(cfg)
	if uninstallNoTimeoutFlag {
		manager.DisableTimeout()
	}

	if err := manager.Uninstall(context.Background(), name); err != nil {
		return errors.NewExitError(errors.ExitFailure, stderrors.New(errors.EnhanceErrorWithHint(err)))
	}

	fmt.Printf("%s %s %s\n", constants.IconSuccess, constants.StatusRemoved, name)
	return nil
}
