package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pipguard/pipguard/pkg/config"
	"github.com/pipguard/pipguard/pkg/errors"
	"github.com/pipguard/pipguard/pkg/output"
	"github.com/pipguard/pipguard/pkg/pip"
)

var (
	listDirFlag       string
	listConfigFlag    string
	listOutputFlag    string
	listNoTimeoutFlag bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed packages",
	Long:    `List the packages installed in the pip environment with their versions.`,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listDirFlag, "directory", "d", ".", "Directory to search for the config file")
	listCmd.Flags().StringVarP(&listConfigFlag, "config", "c", "", "Config file path")
	listCmd.Flags().StringVarP(&listOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: table)")
	listCmd.Flags().BoolVar(&listNoTimeoutFlag, "no-timeout", false, "Disable the pip command timeout")
}

// runList executes the list command.
//
// Retrieves the installed packages and renders them as an aligned table,
// or in a structured format when --output is set.
//
// Parameters:
//   - cmd: Cobra command instance (unused)
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: Config errors (exit 3) or listing failures (exit 2)
func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(listConfigFlag, listDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	manager := pip.NewManager(cfg)
	if listNoTimeoutFlag {
		manager.DisableTimeout()
	}

	installed, err := manager.ListInstalled(context.Background())
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	format := output.ParseFormat(listOutputFlag)
	if output.IsStructuredFormat(format) {
		result := &output.ListResult{
			Summary:  output.ListSummary{TotalPackages: len(installed)},
			Packages: make([]output.ListPackage, 0, len(installed)),
		}
		for _, pkg := range installed {
			result.Packages = append(result.Packages, output.ListPackage{
				Name:    pkg.Name,
				Version: pkg.Version,
			})
		}
		return output.WriteListResult(os.Stdout, format, result)
	}

	if len(installed) == 0 {
		fmt.Println("No packages installed")
		return nil
	}

	table := output.NewTable().AddColumn("NAME").AddColumn("VERSION")
	for _, pkg := range installed {
		table.UpdateWidths(pkg.Name, pkg.Version)
	}
	table.WriteHeader(os.Stdout)
	for _, pkg := range installed {
		table.WriteRow(os.Stdout, pkg.Name, pkg.Version)
	}
	fmt.Printf("\n%d packages\n", len(installed))
	return nil
}
