// Package output provides formatters for exporting command results.
// It supports CSV, JSON, and XML output as alternatives to the default
// text report and table display.
package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is the default human-readable terminal output.
	FormatText Format = "text"
	// FormatCSV outputs data as comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs data as XML.
	FormatXML Format = "xml"
)

// ParseFormat parses a format string into a Format type.
//
// Parsing is case-insensitive. Valid values are "csv", "json", and "xml";
// anything else returns FormatText as the default.
//
// Parameters:
//   - s: Format string to parse (e.g., "csv", "JSON")
//
// Returns:
//   - Format: The parsed format, or FormatText if unrecognized
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "csv":
		return FormatCSV
	case "json":
		return FormatJSON
	case "xml":
		return FormatXML
	default:
		return FormatText
	}
}

// IsStructuredFormat returns true if the format is machine-readable.
//
// Structured formats (CSV, JSON, XML) suppress the interactive text
// rendering and verbose chatter.
//
// Parameters:
//   - f: The format to check
//
// Returns:
//   - bool: true if format is CSV, JSON, or XML
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}

// Formatter handles writing data in a specific format.
//
// Fields:
//   - format: The output format (CSV, JSON, XML, or text)
//   - writer: Destination for formatted output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
//
// Parameters:
//   - format: The desired output format
//   - writer: Destination for formatted output
//
// Returns:
//   - *Formatter: A formatter ready to write data
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format returns the formatter's configured format.
//
// Returns:
//   - Format: The format this formatter writes
func (f *Formatter) Format() Format {
	return f.format
}

// WriteCSV writes data as CSV to the output writer.
//
// Note: csv.Writer buffers all writes and only reports errors via Error()
// after Flush().
//
// Parameters:
//   - headers: Column headers for the CSV
//   - rows: Data rows, each with the same number of columns as headers
//
// Returns:
//   - error: When write or flush fails; otherwise nil
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)

	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}

	w.Flush()
	return w.Error()
}

// WriteJSON writes data as compact JSON to the output writer.
//
// Parameters:
//   - data: Data structure to encode as JSON
//
// Returns:
//   - error: When encoding fails; otherwise nil
func (f *Formatter) WriteJSON(data interface{}) error {
	encoder := json.NewEncoder(f.writer)
	return encoder.Encode(data)
}

// WriteXML writes data as indented XML with a standard header.
//
// Parameters:
//   - data: Data structure to encode as XML (must carry xml tags)
//
// Returns:
//   - error: When encoding fails; otherwise nil
func (f *Formatter) WriteXML(data interface{}) error {
	_, _ = fmt.Fprint(f.writer, xml.Header)
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.writer)
	return nil
}
