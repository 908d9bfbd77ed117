// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for status values.
package constants

// Scan status constants represent the verdict assigned to a package record
// by the policy evaluation.
const (
	// StatusOK indicates the package passed all policy checks.
	StatusOK = "OK"

	// StatusWarning indicates the package carries non-fatal advisories
	// (pre-release version, unparsable version).
	StatusWarning = "WARNING"

	// StatusDeprecated indicates the package was judged obsolete by the
	// version-threshold or name-pattern rule.
	StatusDeprecated = "DEPRECATED"
)

// Lifecycle status constants represent the state of a package during
// install, uninstall, and upgrade operations.
const (
	// StatusUpgraded indicates the package was successfully upgraded.
	StatusUpgraded = "Upgraded"

	// StatusInstalled indicates the package was successfully installed.
	StatusInstalled = "Installed"

	// StatusRemoved indicates the package was successfully uninstalled.
	StatusRemoved = "Removed"

	// StatusFailed indicates the operation failed for the package.
	StatusFailed = "Failed"
)

// Placeholder values for display when data is not available.
const (
	// PlaceholderNA is used when a value is not available.
	PlaceholderNA = "#N/A"
)

// Icon constants for status display.
// These provide visual indicators for package states in CLI output.
const (
	// IconSuccess indicates a successful or healthy state (green circle).
	IconSuccess = "🟢"

	// IconWarning indicates a warning or caution state (orange circle).
	IconWarning = "🟠"

	// IconError indicates an error or deprecated state (red X).
	IconError = "❌"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"
)
