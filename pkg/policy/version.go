package policy

import (
	"fmt"
	"strconv"
	"strings"
)

// parseVersionSegments splits a version string on "." and converts every
// segment to an integer.
//
// This deliberately mirrors the listing format's loose versioning: it is not
// a semver parser, and any non-numeric segment (e.g. "1.x.0", "2.0rc1")
// fails the whole parse. Callers convert that failure into a warning rather
// than a verdict.
//
// Parameters:
//   - version: Raw version string
//
// Returns:
//   - []int: Integer segments in order
//   - error: When any segment is not a plain integer
func parseVersionSegments(version string) ([]int, error) {
	parts := strings.Split(version, ".")
	segments := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid version segment %q in %q", part, version)
		}
		segments = append(segments, n)
	}
	return segments, nil
}

// compareSegments compares two integer sequences lexicographically.
//
// Standard tuple semantics: the first differing segment decides; when one
// sequence is a strict prefix of the other, the shorter one is less.
//
// Parameters:
//   - a: First version's segments
//   - b: Second version's segments
//
// Returns:
//   - int: -1 if a < b, 0 if equal, 1 if a > b
func compareSegments(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
