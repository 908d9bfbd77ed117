package output

import (
	"fmt"
	"io"

	"github.com/pipguard/pipguard/pkg/constants"
)

// WriteScanResult writes scan results in the specified structured format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: Scan result data to write
//
// Returns:
//   - error: When the format is unsupported or the write fails; otherwise nil
func WriteScanResult(w io.Writer, format Format, result *ScanResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeScanCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeScanCSV writes scan results in CSV format.
//
// Multiple warnings on one package are joined with "; " so each package
// stays on a single CSV row.
func writeScanCSV(f *Formatter, result *ScanResult) error {
	headers := []string{"NAME", "VERSION", "STATUS", "REASON", "WARNINGS"}
	rows := make([][]string, 0, len(result.Packages))
	for _, pkg := range result.Packages {
		rows = append(rows, []string{
			pkg.Name,
			pkg.CurrentVersion,
			scanStatus(pkg.IsDeprecated, pkg.HasWarnings),
			pkg.DeprecationReason,
			joinWarnings(pkg.Warnings),
		})
	}
	return f.WriteCSV(headers, rows)
}

// WriteListResult writes list results in the specified structured format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: List result data to write
//
// Returns:
//   - error: When the format is unsupported or the write fails; otherwise nil
func WriteListResult(w io.Writer, format Format, result *ListResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		headers := []string{"NAME", "VERSION"}
		rows := make([][]string, 0, len(result.Packages))
		for _, pkg := range result.Packages {
			rows = append(rows, []string{pkg.Name, pkg.Version})
		}
		return formatter.WriteCSV(headers, rows)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteUpgradeResult writes upgrade results in the specified structured format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: Upgrade result data to write
//
// Returns:
//   - error: When the format is unsupported or the write fails; otherwise nil
func WriteUpgradeResult(w io.Writer, format Format, result *UpgradeResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		headers := []string{"NAME", "VERSION", "STATUS", "ERROR"}
		rows := make([][]string, 0, len(result.Packages))
		for _, pkg := range result.Packages {
			rows = append(rows, []string{pkg.Name, pkg.Version, pkg.Status, pkg.Error})
		}
		return formatter.WriteCSV(headers, rows)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WritePolicyResult writes the policy table in the specified structured format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: Policy table data to write
//
// Returns:
//   - error: When the format is unsupported or the write fails; otherwise nil
func WritePolicyResult(w io.Writer, format Format, result *PolicyResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		headers := []string{"NAME", "MINIMUM_VERSION"}
		rows := make([][]string, 0, len(result.Entries))
		for _, entry := range result.Entries {
			rows = append(rows, []string{entry.Name, entry.MinimumVersion})
		}
		return formatter.WriteCSV(headers, rows)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// scanStatus derives the display status from the verdict flags.
//
// Deprecation dominates: a record that is both deprecated and warned
// reports DEPRECATED.
func scanStatus(isDeprecated, hasWarnings bool) string {
	switch {
	case isDeprecated:
		return constants.StatusDeprecated
	case hasWarnings:
		return constants.StatusWarning
	default:
		return constants.StatusOK
	}
}

// joinWarnings flattens a warning list into a single CSV cell.
func joinWarnings(warnings []string) string {
	out := ""
	for i, warning := range warnings {
		if i > 0 {
			out += "; "
		}
		out += warning
	}
	return out
}
