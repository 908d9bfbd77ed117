package output

import (
	"encoding/xml"

	"github.com/pipguard/pipguard/pkg/policy"
)

// ScanResult represents the output data for the scan command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the scan
//   - Packages: Per-package policy verdicts in listing order
//   - Warnings: Process-level warning messages (omitted if empty)
type ScanResult struct {
	XMLName  xml.Name        `json:"-" xml:"scanResult"`
	Summary  ScanSummary     `json:"summary" xml:"summary"`
	Packages []policy.Result `json:"packages" xml:"packages>package"`
	Warnings []string        `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// ScanSummary holds summary statistics for scan results.
//
// Fields:
//   - TotalPackages: Total number of packages evaluated
//   - Deprecated: Count of packages judged deprecated
//   - Warnings: Count of non-deprecated packages carrying warnings
//   - Healthy: Count of packages with no findings
type ScanSummary struct {
	TotalPackages int `json:"total_packages" xml:"totalPackages"`
	Deprecated    int `json:"deprecated" xml:"deprecated"`
	Warnings      int `json:"warnings" xml:"warnings"`
	Healthy       int `json:"healthy" xml:"healthy"`
}

// ListResult represents the output data for the list command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the listing
//   - Packages: Installed packages in listing order
type ListResult struct {
	XMLName  xml.Name      `json:"-" xml:"listResult"`
	Summary  ListSummary   `json:"summary" xml:"summary"`
	Packages []ListPackage `json:"packages" xml:"packages>package"`
}

// ListSummary holds summary statistics for list results.
//
// Fields:
//   - TotalPackages: Total number of installed packages
type ListSummary struct {
	TotalPackages int `json:"total_packages" xml:"totalPackages"`
}

// ListPackage represents a package entry in the list output.
//
// Fields:
//   - Name: Package name as reported by the listing
//   - Version: Installed version string
type ListPackage struct {
	Name    string `json:"name" xml:"name"`
	Version string `json:"version" xml:"version"`
}

// UpgradeResult represents the output data for the upgrade command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the upgrade batch
//   - Packages: Per-package upgrade outcomes in listing order
type UpgradeResult struct {
	XMLName  xml.Name         `json:"-" xml:"upgradeResult"`
	Summary  UpgradeSummary   `json:"summary" xml:"summary"`
	Packages []UpgradePackage `json:"packages" xml:"packages>package"`
}

// UpgradeSummary holds summary statistics for upgrade results.
//
// Fields:
//   - TotalPackages: Total number of packages processed
//   - Upgraded: Number of packages successfully upgraded
//   - Failed: Number of packages that failed to upgrade
type UpgradeSummary struct {
	TotalPackages int `json:"total_packages" xml:"totalPackages"`
	Upgraded      int `json:"upgraded" xml:"upgraded"`
	Failed        int `json:"failed" xml:"failed"`
}

// UpgradePackage represents a package entry in the upgrade output.
//
// Fields:
//   - Name: Package name
//   - Version: Version before the upgrade
//   - Status: Outcome status (Upgraded or Failed)
//   - Error: Error message when the upgrade failed (omitted if empty)
type UpgradePackage struct {
	Name    string `json:"name" xml:"name"`
	Version string `json:"version" xml:"version"`
	Status  string `json:"status" xml:"status"`
	Error   string `json:"error,omitempty" xml:"error,omitempty"`
}

// PolicyResult represents the output data for the policy command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the policy table
//   - Entries: Policy table entries in table order
type PolicyResult struct {
	XMLName xml.Name      `json:"-" xml:"policyResult"`
	Summary PolicySummary `json:"summary" xml:"summary"`
	Entries []PolicyEntry `json:"entries" xml:"entries>entry"`
}

// PolicySummary holds summary statistics for the policy table.
//
// Fields:
//   - TotalEntries: Number of entries in the effective table
type PolicySummary struct {
	TotalEntries int `json:"total_entries" xml:"totalEntries"`
}

// PolicyEntry represents a single policy table entry.
//
// Fields:
//   - Name: Lowercase package name
//   - MinimumVersion: Minimum supported version for the package
type PolicyEntry struct {
	Name           string `json:"name" xml:"name"`
	MinimumVersion string `json:"minimum_version" xml:"minimumVersion"`
}
