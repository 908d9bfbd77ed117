// Package utils provides small display helpers shared by the table renderers.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the terminal display width of a string.
//
// Unlike len(), this accounts for wide characters (CJK, emoji) that occupy
// two character cells, so columns containing status icons still line up.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string with spaces to the given display width.
//
// Strings already at or beyond the target width are returned unchanged, as
// are all strings when width is zero or negative.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width in character cells
//
// Returns:
//   - string: The padded string
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// Max returns the largest of the given integers, or 0 when none are given.
//
// Parameters:
//   - values: Variable number of integers to compare
//
// Returns:
//   - int: The maximum value, or 0 for an empty input
func Max(values ...int) int {
	m := 0
	for i, v := range values {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}
