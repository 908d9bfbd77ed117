package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipguard/pipguard/pkg/config"
	"github.com/pipguard/pipguard/pkg/constants"
	"github.com/pipguard/pipguard/pkg/errors"
	"github.com/pipguard/pipguard/pkg/output"
	"github.com/pipguard/pipguard/pkg/pip"
	"github.com/pipguard/pipguard/pkg/policy"
	"github.com/pipguard/pipguard/pkg/verbose"
)

var (
	scanDirFlag       string
	scanConfigFlag    string
	scanOutputFlag    string
	scanNoTimeoutFlag bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan installed packages against the deprecation policy",
	Long:  `List the installed pip packages and evaluate each one against the minimum-version policy.`,
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanDirFlag, "directory", "d", ".", "Directory to search for the config file")
	scanCmd.Flags().StringVarP(&scanConfigFlag, "config", "c", "", "Config file path")
	scanCmd.Flags().StringVarP(&scanOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: text)")
	scanCmd.Flags().BoolVar(&scanNoTimeoutFlag, "no-timeout", false, "Disable the pip command timeout")
}

// runScan executes the scan command.
//
// Retrieves the installed packages from pip, evaluates each one against the
// effective policy table, and writes a report. Policy findings are
// informational: the scan exits 0 even when deprecated packages are found.
//
// Parameters:
//   - cmd: Cobra command instance (unused)
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: Config errors (exit 3) or listing failures (exit 2)
func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(scanConfigFlag, scanDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	manager := pip.NewManager(cfg)
	if scanNoTimeoutFlag {
		manager.DisableTimeout()
	}

	installed, err := manager.ListInstalled(context.Background())
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	evaluator := policy.NewEvaluator(policy.NewTable(cfg.Policy.MinimumVersions))
	results := evaluator.Evaluate(installed)
	result := buildScanResult(results)

	format := output.ParseFormat(scanOutputFlag)
	if output.IsStructuredFormat(format) {
		return output.WriteScanResult(os.Stdout, format, result)
	}

	printScanReport(result)
	return nil
}

// buildScanResult assembles the scan result with summary counts.
//
// A package counts as deprecated and warned independently; healthy means
// neither flag is set.
func buildScanResult(results []policy.Result) *output.ScanResult {
	summary := output.ScanSummary{TotalPackages: len(results)}
	for _, r := range results {
		switch {
		case r.IsDeprecated:
			summary.Deprecated++
		case r.HasWarnings:
			summary.Warnings++
		default:
			summary.Healthy++
		}
		verbose.PackageEvaluated(r.Name, r.CurrentVersion, scanStatusFor(r))
	}

	return &output.ScanResult{
		Summary:  summary,
		Packages: results,
	}
}

// scanStatusFor derives the display status for one verdict. Deprecation
// dominates warnings.
func scanStatusFor(r policy.Result) string {
	switch {
	case r.IsDeprecated:
		return constants.StatusDeprecated
	case r.HasWarnings:
		return constants.StatusWarning
	default:
		return constants.StatusOK
	}
}

// printScanReport writes the human-readable scan report to stdout.
func printScanReport(result *output.ScanResult) {
	if result.Summary.TotalPackages == 0 {
		fmt.Println("No packages installed")
		return
	}

	for _, pkg := range result.Packages {
		spec := fmt.Sprintf("%s==%s", pkg.Name, pkg.CurrentVersion)
		switch {
		case pkg.IsDeprecated:
			fmt.Printf("%s DEPRECATED: %s\n", constants.IconError, spec)
			fmt.Printf("    %s\n", pkg.DeprecationReason)
		case pkg.HasWarnings:
			fmt.Printf("%s WARNING: %s\n", constants.IconWarning, spec)
		default:
			fmt.Printf("%s OK: %s\n", constants.IconSuccess, spec)
		}
		for _, warning := range pkg.Warnings {
			fmt.Printf("    %s %s\n", constants.IconWarn, warning)
		}
	}

	fmt.Println()
	fmt.Printf("Total: %d  Deprecated: %d  Warnings: %d  Healthy: %d\n",
		result.Summary.TotalPackages,
		result.Summary.Deprecated,
		result.Summary.Warnings,
		result.Summary.Healthy)
}
