// Package database ties the registered tables into a queryable store: a
// registry that routes operations by table name, a chained nested-loop
// equi-join engine and column aggregation.
//
// The registry is an ordinary value owned by the caller. The entry point
// constructs one per process and passes it to every operation; there is no
// hidden global instance.
package database

import (
	"github.com/pkg/errors"

	"github.com/flatrel/flatrel/table"
)

// Registry owns the registered tables by name and routes operations to
// them. Not safe for concurrent mutation.
type Registry struct {
	tables map[string]table.Table
	names  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]table.Table)}
}

// RegisterTable stores t under name. The last registration for a name wins;
// no schema conflict checking is performed.
func (r *Registry) RegisterTable(name string, t table.Table) {
	if _, ok := r.tables[name]; !ok {
		r.names = append(r.names, name)
	}
	r.tables[name] = t
}

// Table returns the table registered under name.
func (r *Registry) Table(name string) (table.Table, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// Names returns the registered table names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Insert delegates the record to the named table, propagating its errors
// unchanged. An unregistered table is an error wrapping ErrUnknownTable.
func (r *Registry) Insert(name, record string) error {
	t, ok := r.tables[name]
	if !ok {
		return errors.Wrapf(ErrUnknownTable, "table %q", name)
	}
	return t.Insert(record)
}

// Select delegates to the named table's selection predicate. An
// unregistered table yields (nil, nil) rather than an error; only Insert,
// Join and Aggregate treat a missing table as a failure.
func (r *Registry) Select(name string, args ...string) ([]table.Row, error) {
	t, ok := r.tables[name]
	if !ok {
		return nil, nil
	}
	return t.Select(args...)
}
