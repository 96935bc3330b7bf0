// Package output provides formatters for rendering query results.
//
// Rows come out of the store as ordered table.Row values; formatters
// preserve that column order. Supported formats:
//   - JSON Lines: one JSON object per line
//   - CSV: comma-separated values with a header row
//   - table: an ASCII table for terminal display
//
// Example usage:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//	if err := formatter.Format(rows); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"

	"github.com/flatrel/flatrel/table"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render rows in the target format and
// SetOutput to change the output destination.
type Formatter interface {
	// Format writes rows in the formatter's specific format
	Format(rows []table.Row) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under name, writing to w.
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want json, csv or table)", name)
	}
}

// columnOrder returns the union of all column names across rows, in
// first-seen order. Rows from one table share a schema, so this is simply
// the schema order; merged join rows keep their namespaced merge order.
func columnOrder(rows []table.Row) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range rows {
		for _, c := range row.Columns() {
			if !seen[c] {
				seen[c] = true
				columns = append(columns, c)
			}
		}
	}
	return columns
}
