// Package listing parses freeze-style package listings into structured records.
// The input format is the flat "name==version" text produced by pip freeze.
package listing

import (
	"strings"
)

// Separator is the token between package name and version in a listing line.
const Separator = "=="

// Package represents a single installed package record.
//
// Records are produced one-to-one from valid listing lines and are not
// modified after parsing.
//
// Fields:
//   - Name: Package name as it appears in the listing, trimmed, case preserved
//   - Version: Raw version string, trimmed, not necessarily semantic
type Package struct {
	Name    string
	Version string
}

// Spec returns the install specification string for the package.
//
// Returns:
//   - string: The package in "name==version" form
func (p Package) Spec() string {
	return p.Name + Separator + p.Version
}

// Parse converts raw listing lines into package records.
//
// It performs the following operations for each line:
//   - Trims leading and trailing whitespace
//   - Skips empty lines and lines without the "==" separator
//   - Splits on the FIRST occurrence of "==" only, so a version that itself
//     contains "==" is preserved intact in the version field
//   - Trims both halves and skips the line if either is empty
//
// Malformed lines are dropped silently; this is a best-effort parse of
// whatever the package manager printed. Output order matches input order
// and duplicate names are not collapsed.
//
// Parameters:
//   - lines: Raw listing lines, each possibly empty or padded with whitespace
//
// Returns:
//   - []Package: One record per valid line, in input order
func Parse(lines []string) []Package {
	var packages []Package
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, Separator) {
			continue
		}

		parts := strings.SplitN(line, Separator, 2)
		if len(parts) != 2 {
			continue
		}

		name := strings.TrimSpace(parts[0])
		version := strings.TrimSpace(parts[1])
		if name == "" || version == "" {
			continue
		}

		packages = append(packages, Package{Name: name, Version: version})
	}
	return packages
}

// SplitOutput splits raw command output into listing lines.
//
// The output is trimmed and split on newlines; carriage returns from
// Windows-style line endings are removed.
//
// Parameters:
//   - output: Raw bytes captured from the package manager
//
// Returns:
//   - []string: Individual listing lines, possibly empty
func SplitOutput(output []byte) []string {
	normalized := strings.ReplaceAll(string(output), "\r\n", "\n")
	trimmed := strings.TrimSpace(normalized)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
