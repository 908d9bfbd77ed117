package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseWellFormedLines tests parsing of valid listing lines.
//
// It verifies:
//   - Each "name==version" line yields exactly one record
//   - Name and version are trimmed with case preserved
//   - Output order matches input order
func TestParseWellFormedLines(t *testing.T) {
	got := Parse([]string{
		"requests==2.25.1",
		"  Flask == 1.1.2  ",
		"numpy==1.19.5",
	})

	require.Len(t, got, 3)
	assert.Equal(t, Package{Name: "requests", Version: "2.25.1"}, got[0])
	assert.Equal(t, Package{Name: "Flask", Version: "1.1.2"}, got[1])
	assert.Equal(t, Package{Name: "numpy", Version: "1.19.5"}, got[2])
}

// TestParseMalformedLines tests silent dropping of unparsable lines.
//
// It verifies:
//   - Empty lines and lines without the separator are skipped
//   - Lines with an empty name or version half are skipped
//   - No error is produced for malformed input
func TestParseMalformedLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"empty line", []string{""}, 0},
		{"whitespace only", []string{"   "}, 0},
		{"no separator", []string{"nosep"}, 0},
		{"single equals", []string{"a=1.0"}, 0},
		{"missing version", []string{"a=="}, 0},
		{"missing name", []string{"==1.0"}, 0},
		{"separator only", []string{"=="}, 0},
		{"valid among noise", []string{"", "nosep", "b==2.0"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Parse(tt.lines), tt.want)
		})
	}
}

// TestParseSplitsOnFirstSeparatorOnly tests the first-separator split rule.
//
// It verifies:
//   - A line like "a==1==2" splits into name "a" and version "1==2"
//   - Surrounding malformed lines are still dropped
func TestParseSplitsOnFirstSeparatorOnly(t *testing.T) {
	got := Parse([]string{"", "nosep", "a==1==2"})

	require.Len(t, got, 1)
	assert.Equal(t, Package{Name: "a", Version: "1==2"}, got[0])
}

// TestParseNoDeduplication tests that duplicate names produce duplicate records.
//
// It verifies:
//   - Two lines naming the same package yield two records
func TestParseNoDeduplication(t *testing.T) {
	got := Parse([]string{"dup==1.0.0", "dup==2.0.0"})

	require.Len(t, got, 2)
	assert.Equal(t, "1.0.0", got[0].Version)
	assert.Equal(t, "2.0.0", got[1].Version)
}

// TestParseIsPure tests that parsing has no effect on its input.
//
// It verifies:
//   - Parsing the same input twice yields identical results
func TestParseIsPure(t *testing.T) {
	lines := []string{"a==1.0", "b==2.0"}
	first := Parse(lines)
	second := Parse(lines)
	assert.Equal(t, first, second)
}

// TestSpec tests the install specification string.
//
// It verifies:
//   - Spec rebuilds the "name==version" form
func TestSpec(t *testing.T) {
	p := Package{Name: "requests", Version: "2.25.1"}
	assert.Equal(t, "requests==2.25.1", p.Spec())
}

// TestSplitOutput tests splitting raw freeze output into lines.
//
// It verifies:
//   - Lines are split on newlines with CRLF normalized
//   - Leading and trailing blank output is trimmed
//   - Empty output yields no lines
func TestSplitOutput(t *testing.T) {
	lines := SplitOutput([]byte("a==1.0\r\nb==2.0\n\n"))
	assert.Equal(t, []string{"a==1.0", "b==2.0"}, lines)

	assert.Nil(t, SplitOutput([]byte("")))
	assert.Nil(t, SplitOutput([]byte("  \n ")))
}
