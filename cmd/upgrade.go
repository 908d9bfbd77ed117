package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipguard/pipguard/pkg/config"
	"github.com/pipguard/pipguard/pkg/constants"
	"github.com/pipguard/pipguard/pkg/errors"
	"github.com/pipguard/pipguard/pkg/output"
	"github.com/pipguard/pipguard/pkg/pip"
)

var (
	upgradeAllFlag       bool
	upgradeDirFlag       string
	upgradeConfigFlag    string
	upgradeOutputFlag    string
	upgradeNoTimeoutFlag bool
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade [name]",
	Short: "Upgrade a package, or every installed package with --all",
	Long: `Upgrade a single package to its latest version, or upgrade every
installed package sequentially with --all. A bulk upgrade continues past
per-package failures and reports them at the end.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpgrade,
}

func init() {
	upgradeCmd.Flags().BoolVar(&upgradeAllFlag, "all", false, "Upgrade every installed package")
	upgradeCmd.Flags().StringVarP(&upgradeDirFlag, "directory", "d", ".", "Directory to search for the config file")
	upgradeCmd.Flags().StringVarP(&upgradeConfigFlag, "config", "c", "", "Config file path")
	upgradeCmd.Flags().StringVarP(&upgradeOutputFlag, "output", "o", "", "Output format for --all: json, csv, xml (default: text)")
	upgradeCmd.Flags().BoolVar(&upgradeNoTimeoutFlag, "no-timeout", false, "Disable the pip command timeout")
}

// runUpgrade executes the upgrade command.
//
// With a package name, upgrades that single package. With --all, retrieves
// the installed listing once and upgrades every package sequentially; the
// batch never stops on a per-package failure.
//
// Parameters:
//   - cmd: Cobra command instance (unused)
//   - args: Command line arguments; args[0] is the package name unless --all
//
// Returns:
//   - error: Config errors (exit 3), complete failures (exit 2), or a
//     PartialSuccessError when a bulk upgrade partly failed (exit 1)
func runUpgrade(cmd *cobra.Command, args []string) error {
	if !upgradeAllFlag && len(args) != 1 {
		return errors.NewExitErrorf(errors.ExitConfigError, "upgrade requires a package name or the --all flag")
	}
	if upgradeAllFlag && len(args) > 0 {
		return errors.NewExitErrorf(errors.ExitConfigError, "upgrade --all does not take a package name")
	}

	cfg, err := config.LoadConfig(upgradeConfigFlag, upgradeDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	manager := pip.NewManager(cfg)
	if upgradeNoTimeoutFlag {
		manager.DisableTimeout()
	}

	if !upgradeAllFlag {
		name := args[0]
		if err := manager.Upgrade(context.Background(), name); err != nil {
			return errors.NewExitError(errors.ExitFailure, stderrors.New(errors.EnhanceErrorWithHint(err)))
		}
		fmt.Printf("%s %s %s\n", constants.IconSuccess, constants.StatusUpgraded, name)
		return nil
	}

	outcomes, err := manager.UpgradeAll(context.Background())
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	return reportUpgradeOutcomes(outcomes)
}

// reportUpgradeOutcomes writes the bulk upgrade report and derives the
// overall result.
//
// The overall result is the logical AND of the per-package outcomes: all
// succeeded means success, a mix returns a PartialSuccessError (exit 1),
// and zero successes returns a complete failure (exit 2).
func reportUpgradeOutcomes(outcomes []pip.UpgradeOutcome) error {
	succeeded := 0
	var failures []error
	packages := make([]output.UpgradePackage, 0, len(outcomes))
	for _, outcome := range outcomes {
		entry := output.UpgradePackage{
			Name:    outcome.Package.Name,
			Version: outcome.Package.Version,
		}
		if outcome.Err != nil {
			entry.Status = constants.StatusFailed
			entry.Error = outcome.Err.Error()
			failures = append(failures, outcome.Err)
		} else {
			entry.Status = constants.StatusUpgraded
			succeeded++
		}
		packages = append(packages, entry)
	}

	result := &output.UpgradeResult{
		Summary: output.UpgradeSummary{
			TotalPackages: len(outcomes),
			Upgraded:      succeeded,
			Failed:        len(failures),
		},
		Packages: packages,
	}

	format := output.ParseFormat(upgradeOutputFlag)
	if output.IsStructuredFormat(format) {
		if err := output.WriteUpgradeResult(os.Stdout, format, result); err != nil {
			return err
		}
	} else {
		printUpgradeReport(result)
	}

	if len(failures) == 0 {
		return nil
	}
	if succeeded > 0 {
		return errors.NewExitError(errors.ExitPartialFailure,
			errors.NewPartialSuccessError(succeeded, len(failures), failures))
	}
	return errors.NewExitError(errors.ExitFailure, stderrors.Join(failures...))
}

// printUpgradeReport writes the human-readable bulk upgrade report to stdout.
func printUpgradeReport(result *output.UpgradeResult) {
	if result.Summary.TotalPackages == 0 {
		fmt.Println("No packages to upgrade")
		return
	}

	for _, pkg := range result.Packages {
		if pkg.Status == constants.StatusFailed {
			fmt.Printf("%s %s: %s\n", constants.IconError, pkg.Name, pkg.Error)
		} else {
			fmt.Printf("%s %s %s (was %s)\n", constants.IconSuccess, constants.StatusUpgraded, pkg.Name, pkg.Version)
		}
	}

	fmt.Println()
	fmt.Printf("%d upgraded, %d failed\n", result.Summary.Upgraded, result.Summary.Failed)
}
