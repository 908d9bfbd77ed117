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
	installDirFlag       string
	installConfigFlag    string
	installNoTimeoutFlag bool
)

var installCmd = &cobra.Command{
	Use:   "install <name==version>",
	Short: "Install a package at a pinned version",
	Long:  `Install a package via pip. The argument must be a pinned spec in name==version form.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installDirFlag, "directory", "d", ".", "Directory to search for the config file")
	installCmd.Flags().StringVarP(&installConfigFlag, "config", "c", "", "Config file path")
	installCmd.Flags().BoolVar(&installNoTimeoutFlag, "no-timeout", false, "Disable the pip command timeout")
}

// runInstall executes the install command.
//
// The spec is validated before pip is invoked, so a malformed argument
// never reaches the shell.
//
// Parameters:
//   - cmd: Cobra command instance (unused)
//   - args: Command line arguments; args[0] is the package spec
//
// Returns:
//   - error: Validation or config errors (exit 3), install failures (exit 2)
func runInstall(cmd *cobra.Command, args []string) error {
	spec := args[0]
	if err := pip.ValidateSpec(spec); err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	cfg, err := config.LoadConfig(installConfigFlag, installDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	manager := pip.NewManager(cfg)
	if installNoTimeoutFlag {
		manager.DisableTimeout()
	}

	if err := manager.Install(context.Background(), spec); err != nil {
		return errors.NewExitError(errors.ExitFailure, stderrors.New(errors.EnhanceErrorWithHint(err)))
	}

	fmt.Printf("%s %s %s\n", constants.IconSuccess, constants.StatusInstalled, spec)
	return nil
}
