package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDisplayWidth tests display width calculation for various strings.
//
// It verifies:
//   - ASCII strings have width equal to their length
//   - Wide characters (emoji, CJK) count as two cells
//   - Empty strings have zero width
func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty string", "", 0},
		{"ascii", "requests", 8},
		{"emoji counts double", "🟢", 2},
		{"mixed ascii and emoji", "🟢 ok", 5},
		{"cjk characters", "依存", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayWidth(tt.input))
		})
	}
}

// TestToWidth tests padding strings to a target display width.
//
// It verifies:
//   - Short strings are padded with spaces
//   - Strings at or beyond the target width are unchanged
//   - Non-positive widths leave the string unchanged
//   - Wide characters are padded by display width, not rune count
func TestToWidth(t *testing.T) {
	assert.Equal(t, "abc  ", ToWidth("abc", 5))
	assert.Equal(t, "abcdef", ToWidth("abcdef", 5))
	assert.Equal(t, "abc", ToWidth("abc", 0))
	assert.Equal(t, "abc", ToWidth("abc", -1))
	assert.Equal(t, "🟢  ", ToWidth("🟢", 4))
}

// TestMax tests the maximum helper.
//
// It verifies:
//   - The largest value is returned
//   - Empty input returns 0
//   - Negative values are handled
func TestMax(t *testing.T) {
	assert.Equal(t, 9, Max(1, 9, 3))
	assert.Equal(t, 0, Max())
	assert.Equal(t, -1, Max(-5, -1))
}
