package policy

import (
	"fmt"
	"strings"

	"github.com/pipguard/pipguard/pkg/listing"
)

// Pre-release keywords checked as plain substrings of the lowercased
// version. Substring matching is intentional: "1.0.0-predictable" trips
// the "pre" keyword, matching the original scanner's behavior.
var preReleaseKeywords = []string{"alpha", "beta", "rc", "dev", "pre"}

// Name substrings that unconditionally mark a package deprecated.
var deprecatedNameMarkers = []string{"deprecated", "legacy"}

// Reason and warning message templates.
const (
	reasonBelowMinimum   = "Version %s is deprecated. Minimum supported version: %s"
	reasonDeprecatedName = "Package name indicates deprecated status"
	warningUnparsable    = "Version %s cannot be parsed"
	warningPreRelease    = "This is a development/pre-release version"
)

// Result is the policy verdict for a single package record.
//
// Results are produced once per record and not modified afterwards.
//
// Fields:
//   - Name: Package name, lowercased
//   - CurrentVersion: Raw version string from the record
//   - IsDeprecated: Whether the package was judged obsolete
//   - DeprecationReason: Why the package is deprecated; set iff IsDeprecated
//   - HasWarnings: Whether non-fatal advisories were raised
//   - Warnings: Ordered advisory messages; non-empty iff HasWarnings
type Result struct {
	Name              string   `json:"name" xml:"name"`
	CurrentVersion    string   `json:"current_version" xml:"currentVersion"`
	IsDeprecated      bool     `json:"is_deprecated" xml:"isDeprecated"`
	DeprecationReason string   `json:"deprecation_reason,omitempty" xml:"deprecationReason,omitempty"`
	HasWarnings       bool     `json:"has_warnings" xml:"hasWarnings"`
	Warnings          []string `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// Evaluator applies the static deprecation policy to package records.
//
// The evaluator holds a read-only policy table built at construction;
// evaluation is a pure function of the input records.
//
// Fields: This type has no exported fields.
type Evaluator struct {
	table *Table
}

// NewEvaluator creates an evaluator backed by the given policy table.
//
// A nil table falls back to the built-in defaults.
//
// Parameters:
//   - table: The policy table to evaluate against, may be nil
//
// Returns:
//   - *Evaluator: A ready-to-use evaluator
func NewEvaluator(table *Table) *Evaluator {
	if table == nil {
		table = DefaultTable()
	}
	return &Evaluator{table: table}
}

// Table returns the policy table the evaluator was built with.
//
// Returns:
//   - *Table: The evaluator's read-only policy table
func (e *Evaluator) Table() *Table {
	return e.table
}

// Evaluate produces one verdict per package record, in input order.
//
// For each record three independent checks run, all of which may fire on
// the same record:
//
//  1. Known-package minimum version: if the lowercased name is in the
//     policy table and the dot-split integer comparison puts the current
//     version below the minimum, the record is deprecated. A version that
//     cannot be parsed into integer segments yields a warning instead and
//     never a deprecation from this check.
//  2. Pre-release keywords: a lowercased version containing alpha, beta,
//     rc, dev, or pre yields a warning.
//  3. Deprecated name: a lowercased name containing "deprecated" or
//     "legacy" unconditionally marks the record deprecated, overwriting
//     any reason set by check 1.
//
// No error is returned for well-formed records; all version-parse failures
// become warnings on the affected record only.
//
// Parameters:
//   - records: Parsed package records to evaluate
//
// Returns:
//   - []Result: One verdict per record, order preserving
func (e *Evaluator) Evaluate(records []listing.Package) []Result {
	results := make([]Result, 0, len(records))
	for _, record := range records {
		results = append(results, e.evaluateOne(record))
	}
	return results
}

// evaluateOne applies the three policy checks to a single record.
func (e *Evaluator) evaluateOne(record listing.Package) Result {
	name := strings.ToLower(record.Name)
	current := record.Version

	result := Result{
		Name:           name,
		CurrentVersion: current,
	}

	// Check 1: known-package minimum version
	if minimum, ok := e.table.MinimumVersion(name); ok {
		currentSegments, errCurrent := parseVersionSegments(current)
		minimumSegments, errMinimum := parseVersionSegments(minimum)

		if errCurrent != nil || errMinimum != nil {
			result.HasWarnings = true
			result.Warnings = append(result.Warnings, fmt.Sprintf(warningUnparsable, current))
		} else if compareSegments(currentSegments, minimumSegments) < 0 {
			result.IsDeprecated = true
			result.DeprecationReason = fmt.Sprintf(reasonBelowMinimum, current, minimum)
		}
	}

	// Check 2: pre-release keywords
	lowerVersion := strings.ToLower(current)
	for _, keyword := range preReleaseKeywords {
		if strings.Contains(lowerVersion, keyword) {
			result.HasWarnings = true
			result.Warnings = append(result.Warnings, warningPreRelease)
			break
		}
	}

	// Check 3: deprecated name markers. Overwrites any reason from check 1.
	for _, marker := range deprecatedNameMarkers {
		if strings.Contains(name, marker) {
			result.IsDeprecated = true
			result.DeprecationReason = reasonDeprecatedName
			break
		}
	}

	return result
}
