package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/flatrel/flatrel/table"
)

// TableFormatter outputs rows as an ASCII table for terminal display
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new ASCII table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders rows as an ASCII table. Nothing is written for an empty
// result.
func (t *TableFormatter) Format(rows []table.Row) error {
	if len(rows) == 0 {
		return nil
	}

	columns := columnOrder(rows)
	tw := tablewriter.NewWriter(t.writer)
	tw.SetHeader(columns)
	tw.SetAutoFormatHeaders(false)
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i], _ = row.Get(col)
		}
		tw.Append(record)
	}
	tw.Render()
	return nil
}
