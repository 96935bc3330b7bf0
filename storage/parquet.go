package storage

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/flatrel/flatrel/table"
)

// The parquet archive format holds a point-in-time snapshot of one table.
// Every column is stored as a parquet string; types round-trip the same way
// they do in the primary CSV format.

// WriteParquet writes a table snapshot to path, overwriting any previous
// file. The parquet schema is built from the table's column list.
func WriteParquet(path string, columns []string, rows []table.Row) error {
	group := parquet.Group{}
	for _, c := range columns {
		group[c] = parquet.String()
	}
	schema := parquet.NewSchema("snapshot", group)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writer := parquet.NewWriter(f, schema)
	for _, row := range rows {
		if err := writer.Write(row.Map()); err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// ReadParquet reads a snapshot written by WriteParquet. The returned column
// list follows the parquet schema's field order, which may differ from the
// originating table's schema order; callers reorder against their own
// schema when restoring.
func ReadParquet(path string) ([]string, []table.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}
	pqFile, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}

	reader := parquet.NewReader(pqFile)
	defer func() { _ = reader.Close() }()

	rows := make([]table.Row, 0)
	for {
		raw := make(map[string]interface{})
		err := reader.Read(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("failed to read row: %w", err)
		}
		values := make([]string, len(columns))
		for i, c := range columns {
			values[i] = stringValue(raw[c])
		}
		row, err := table.NewRow(columns, values)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build row: %w", err)
		}
		rows = append(rows, row)
	}
	return columns, rows, nil
}

func stringValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
