// Package table implements the store's fixed table kinds: schema
// definitions, in-memory rows, insert-time uniqueness constraints and the
// per-kind selection predicates.
//
// A table never talks to the filesystem directly. It persists through the
// Store collaborator, which loads and saves the complete row set of one
// table. Inserts are all-or-nothing: the constraint check, the in-memory
// append and the durable write form a single logical unit.
package table

import (
	"fmt"
	"strings"
)

// Store is the durable storage collaborator for a single table.
type Store interface {
	// LoadAll returns every stored row, or nil when no durable data exists.
	LoadAll() ([]Row, error)

	// SaveAll replaces the durable contents with the given rows, writing
	// the columns as a header first.
	SaveAll(columns []string, rows []Row) error
}

// Table is the capability set shared by every table kind.
type Table interface {
	// Schema returns the ordered column names.
	Schema() []string

	// Rows returns the in-memory rows in insertion order.
	Rows() []Row

	// Insert parses a comma-delimited record, checks every uniqueness
	// constraint, appends the row and persists the full table.
	Insert(record string) error

	// Select evaluates the kind's selection predicate. The argument shape
	// is kind-specific; see the concrete types.
	Select(args ...string) ([]Row, error)

	// Load replaces the in-memory rows with the durable contents.
	Load() error

	// Save persists the complete in-memory row set.
	Save() error

	// Replace swaps in a complete new row set and persists it.
	Replace(rows []Row) error
}

// Unique is a uniqueness constraint: no two rows may share identical
// values across all of Columns.
type Unique struct {
	Columns []string
}

// base carries the behavior shared by all table kinds. The schema and the
// constraint set are data fixed at construction; constraints are checked
// in declaration order, which determines the error a conflicting insert
// reports.
type base struct {
	schema  []string
	uniques []Unique
	store   Store
	rows    []Row
}

// Schema returns the ordered column names.
func (b *base) Schema() []string {
	schema := make([]string, len(b.schema))
	copy(schema, b.schema)
	return schema
}

// Rows returns the in-memory rows in insertion order.
func (b *base) Rows() []Row {
	rows := make([]Row, len(b.rows))
	copy(rows, b.rows)
	return rows
}

// Load replaces the in-memory rows with the durable contents. When no
// durable data exists the row set becomes empty. Safe to call at any time.
func (b *base) Load() error {
	rows, err := b.store.LoadAll()
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []Row{}
	}
	b.rows = rows
	return nil
}

// Save writes the complete in-memory row set through the store.
func (b *base) Save() error {
	return b.store.SaveAll(b.Schema(), b.rows)
}

// Replace swaps in a complete new row set and persists it. Every row must
// carry exactly the table's schema.
func (b *base) Replace(rows []Row) error {
	for i, row := range rows {
		if !columnsEqual(row.Columns(), b.schema) {
			return fmt.Errorf("row %d columns %v do not match schema %v", i, row.Columns(), b.schema)
		}
	}
	old := b.rows
	b.rows = append([]Row{}, rows...)
	if err := b.Save(); err != nil {
		b.rows = old
		return err
	}
	return nil
}

// Insert parses a comma-delimited record into a row using the schema
// (fields map positionally to columns), checks every uniqueness constraint
// against the existing rows, appends and persists the whole table. On any
// failure neither memory nor durable storage changes.
func (b *base) Insert(record string) error {
	fields := strings.Split(record, ",")
	if len(fields) != len(b.schema) {
		return fmt.Errorf("record has %d fields, schema has %d (%s)", len(fields), len(b.schema), strings.Join(b.schema, ", "))
	}
	row, err := NewRow(b.schema, fields)
	if err != nil {
		return err
	}
	if err := b.checkUniques(row); err != nil {
		return err
	}
	b.rows = append(b.rows, row)
	if err := b.Save(); err != nil {
		b.rows = b.rows[:len(b.rows)-1]
		return err
	}
	return nil
}

// checkUniques reports the first constraint, in declaration order, that the
// candidate row would violate.
func (b *base) checkUniques(candidate Row) error {
	for _, u := range b.uniques {
		for _, existing := range b.rows {
			if sameValues(existing, candidate, u.Columns) {
				return &ConstraintError{Columns: u.Columns}
			}
		}
	}
	return nil
}

// selectRange returns the rows whose column parses to an integer in the
// inclusive range [low, high].
func (b *base) selectRange(column string, low, high int) ([]Row, error) {
	out := []Row{}
	for _, row := range b.rows {
		n, err := row.Int(column)
		if err != nil {
			return nil, err
		}
		if n >= low && n <= high {
			out = append(out, row)
		}
	}
	return out, nil
}

func sameValues(a, b Row, columns []string) bool {
	for _, c := range columns {
		av, _ := a.Get(c)
		bv, _ := b.Get(c)
		if av != bv {
			return false
		}
	}
	return true
}

func columnsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
