package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Row is a single table record: an ordered mapping from column name to
// string value. The order is the table's schema order, or the merge order
// for join results. Values are stored as plain strings and parsed to
// integers on demand.
type Row struct {
	columns []string
	values  map[string]string
}

// NewRow builds a row from parallel column and value slices.
//
// Returns an error if the slices have different lengths.
func NewRow(columns, values []string) (Row, error) {
	if len(columns) != len(values) {
		return Row{}, fmt.Errorf("row has %d values for %d columns", len(values), len(columns))
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	m := make(map[string]string, len(columns))
	for i, c := range columns {
		m[c] = values[i]
	}
	return Row{columns: cols, values: m}, nil
}

// Get returns the value stored under column and whether the column exists.
func (r Row) Get(column string) (string, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Columns returns the column names in order.
func (r Row) Columns() []string {
	cols := make([]string, len(r.columns))
	copy(cols, r.columns)
	return cols
}

// Values returns the values in column order.
func (r Row) Values() []string {
	values := make([]string, len(r.columns))
	for i, c := range r.columns {
		values[i] = r.values[c]
	}
	return values
}

// Map returns the row as a plain map, for collaborators that do not care
// about column order.
func (r Row) Map() map[string]string {
	m := make(map[string]string, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// Len returns the number of columns.
func (r Row) Len() int {
	return len(r.columns)
}

// Int parses the named column as an integer. A value that does not parse
// fails with an error wrapping ErrNotNumeric.
func (r Row) Int(column string) (int, error) {
	v, ok := r.values[column]
	if !ok {
		return 0, fmt.Errorf("column %q not found", column)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("column %q: value %q: %w", column, v, ErrNotNumeric)
	}
	return n, nil
}

// Namespaced returns a copy of the row with every column renamed from
// "column" to "table.column", so rows from different tables can be merged
// without key collisions.
func (r Row) Namespaced(table string) Row {
	cols := make([]string, len(r.columns))
	values := make(map[string]string, len(r.columns))
	for i, c := range r.columns {
		key := table + "." + c
		cols[i] = key
		values[key] = r.values[c]
	}
	return Row{columns: cols, values: values}
}

// Merge returns a new row holding this row's fields followed by other's.
// When both rows carry the same column, other's value wins and the column
// keeps its original position.
func (r Row) Merge(other Row) Row {
	cols := make([]string, 0, len(r.columns)+len(other.columns))
	values := make(map[string]string, len(r.columns)+len(other.columns))
	for _, c := range r.columns {
		cols = append(cols, c)
		values[c] = r.values[c]
	}
	for _, c := range other.columns {
		if _, ok := values[c]; !ok {
			cols = append(cols, c)
		}
		values[c] = other.values[c]
	}
	return Row{columns: cols, values: values}
}

// MarshalJSON encodes the row as a JSON object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(r.values[c])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
