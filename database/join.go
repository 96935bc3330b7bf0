package database

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/flatrel/flatrel/table"
)

// joinRef is a validated (table, column) reference parsed from a
// "table.column" string.
type joinRef struct {
	Table  string
	Column string
}

func (j joinRef) key() string {
	return j.Table + "." + j.Column
}

// Join evaluates a left-to-right chain of pairwise equi-joins across the
// named tables. Each element of keys is one join condition: a left and a
// right "table.column" reference. The first condition joins its left
// table's rows against its right table's rows; every later condition joins
// the accumulated result (on the left key, which must already be one of its
// namespaced columns) against the right table's rows.
//
// Before joining, every participating row is namespaced: each column is
// renamed to "tablename.column", so merged rows never collide. Result order
// follows the nested iteration: outer over the left/accumulated side, inner
// over the right side, each in insertion order. Zero matches yield an empty
// slice, not an error.
func (r *Registry) Join(tables []string, keys [][2]string) ([]table.Row, error) {
	joined := make(map[string]table.Table, len(tables))
	for _, name := range tables {
		t, ok := r.tables[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownTable, "table %q", name)
		}
		joined[name] = t
	}

	refs := make([]joinRef, 0, len(keys)*2)
	for _, pair := range keys {
		for _, key := range pair {
			ref, err := parseJoinRef(key, joined)
			if err != nil {
				return nil, err
			}
			refs = append(refs, ref)
		}
	}

	var acc []table.Row
	for i := 0; i+1 < len(refs); i += 2 {
		left, right := refs[i], refs[i+1]
		rightRows := namespaced(right.Table, joined[right.Table].Rows())
		if i == 0 {
			leftRows := namespaced(left.Table, joined[left.Table].Rows())
			acc = joinRows(leftRows, rightRows, left.key(), right.key())
			continue
		}
		if len(acc) > 0 {
			if _, ok := acc[0].Get(left.key()); !ok {
				return nil, errors.Errorf("join key %q is not present in the accumulated result", left.key())
			}
		}
		acc = joinRows(acc, rightRows, left.key(), right.key())
	}
	if acc == nil {
		acc = []table.Row{}
	}
	return acc, nil
}

// parseJoinRef splits a "table.column" reference and validates it against
// the tables taking part in the join.
func parseJoinRef(key string, joined map[string]table.Table) (joinRef, error) {
	name, column, ok := strings.Cut(key, ".")
	if !ok {
		return joinRef{}, errors.Errorf("join key %q must have the form table.column", key)
	}
	t, ok := joined[name]
	if !ok {
		return joinRef{}, errors.Wrapf(ErrUnknownTable, "table %q", name)
	}
	if !slices.Contains(t.Schema(), column) {
		return joinRef{}, errors.Wrapf(ErrUnknownColumn, "table %q has no column %q", name, column)
	}
	return joinRef{Table: name, Column: column}, nil
}

// namespaced rewrites every column of every row to "table.column".
func namespaced(name string, rows []table.Row) []table.Row {
	out := make([]table.Row, len(rows))
	for i, row := range rows {
		out[i] = row.Namespaced(name)
	}
	return out
}

// joinRows is a nested-loop equi-join: every left row against every right
// row, keeping the merged pairs whose key columns hold equal values. Both
// keys are guaranteed present: namespaced table rows carry their own
// columns, and Join checks the accumulator before chaining.
func joinRows(left, right []table.Row, leftKey, rightKey string) []table.Row {
	var out []table.Row
	for _, l := range left {
		lv, _ := l.Get(leftKey)
		for _, r := range right {
			if rv, _ := r.Get(rightKey); rv == lv {
				out = append(out, l.Merge(r))
			}
		}
	}
	return out
}
