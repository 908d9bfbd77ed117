package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipguard/pipguard/pkg/config"
	"github.com/pipguard/pipguard/pkg/errors"
	"github.com/pipguard/pipguard/pkg/output"
	"github.com/pipguard/pipguard/pkg/policy"
)

var (
	policyDirFlag    string
	policyConfigFlag string
	policyOutputFlag string
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Show the effective minimum-version policy table",
	Long:  `Show the built-in minimum-version policy table merged with any entries from the config file.`,
	RunE:  runPolicy,
}

func init() {
	policyCmd.Flags().StringVarP(&policyDirFlag, "directory", "d", ".", "Directory to search for the config file")
	policyCmd.Flags().StringVarP(&policyConfigFlag, "config", "c", "", "Config file path")
	policyCmd.Flags().StringVarP(&policyOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: table)")
}

// runPolicy executes the policy command.
//
// Builds the effective policy table (built-in entries plus config extras)
// and prints it in declaration order.
//
// Parameters:
//   - cmd: Cobra command instance (unused)
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: Config errors (exit 3) or output failures
func runPolicy(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(policyConfigFlag, policyDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	table := policy.NewTable(cfg.Policy.MinimumVersions)

	entries := make([]output.PolicyEntry, 0, table.Len())
	for _, name := range table.Names() {
		minimum, _ := table.MinimumVersion(name)
		entries = append(entries, output.PolicyEntry{
			Name:           name,
			MinimumVersion: minimum,
		})
	}

	format := output.ParseFormat(policyOutputFlag)
	if output.IsStructuredFormat(format) {
		result := &output.PolicyResult{
			Summary: output.PolicySummary{TotalEntries: len(entries)},
			Entries: entries,
		}
		return output.WritePolicyResult(os.Stdout, format, result)
	}

	display := output.NewTable().AddColumn("NAME").AddColumn("MINIMUM VERSION")
	for _, entry := range entries {
		display.UpdateWidths(entry.Name, entry.MinimumVersion)
	}
	display.WriteHeader(os.Stdout)
	for _, entry := range entries {
		display.WriteRow(os.Stdout, entry.Name, entry.MinimumVersion)
	}

	fmt.Printf("\n%d policy entries", len(entries))
	if extras := len(cfg.Policy.MinimumVersions); extras > 0 {
		fmt.Printf(" (%d from config)", extras)
	}
	fmt.Println()
	return nil
}
