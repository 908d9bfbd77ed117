package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pipguard/pipguard/pkg/utils"
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
type Column struct {
	Header string
	Width  int
}

// Table is a small terminal table formatter with dynamic column widths.
// Width calculations are Unicode-aware so emoji status icons line up.
//
// Fields:
//   - columns: Columns with their headers and widths
//   - separator: String used between columns (default: two spaces)
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a new table formatter.
//
// Returns:
//   - *Table: A table ready for column configuration
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// AddColumn adds a column with the given header and returns the table.
//
// The initial width is the display width of the header.
//
// Parameters:
//   - header: The text to display in the column header
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
	})
	return t
}

// UpdateWidths grows column widths to fit a row of values and returns the table.
//
// Parameters:
//   - values: One string per column, in column order
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i < len(t.columns) {
			width := utils.DisplayWidth(val)
			if width > t.columns[i].Width {
				t.columns[i].Width = width
			}
		}
	}
	return t
}

// FormatRow formats a row of values padded to the column widths.
//
// The final column is not padded, so lines carry no trailing spaces.
//
// Parameters:
//   - values: One string per column, in column order
//
// Returns:
//   - string: The formatted row without a trailing newline
func (t *Table) FormatRow(values ...string) string {
	parts := make([]string, 0, len(t.columns))
	for i, col := range t.columns {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		if i == len(t.columns)-1 {
			parts = append(parts, val)
		} else {
			parts = append(parts, utils.ToWidth(val, col.Width))
		}
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// WriteHeader writes the header row and a dashed separator line.
//
// Parameters:
//   - w: Destination writer
func (t *Table) WriteHeader(w io.Writer) {
	headers := make([]string, len(t.columns))
	total := 0
	for i, col := range t.columns {
		headers[i] = col.Header
		total += col.Width
	}
	total += (len(t.columns) - 1) * utils.DisplayWidth(t.separator)

	_, _ = fmt.Fprintln(w, t.FormatRow(headers...))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", utils.Max(total, 1)))
}

// WriteRow writes a single data row.
//
// Parameters:
//   - w: Destination writer
//   - values: One string per column, in column order
func (t *Table) WriteRow(w io.Writer, values ...string) {
	_, _ = fmt.Fprintln(w, t.FormatRow(values...))
}
