package database

import "github.com/pkg/errors"

// Lookup failures shared by the registry, the join engine and the aggregate
// engine. All of them are wrapped with the offending name before they
// surface, and remain matchable with errors.Is.
var (
	// ErrUnknownTable reports a table name that is not registered.
	ErrUnknownTable = errors.New("table does not exist")

	// ErrUnknownColumn reports a column missing from a table's schema.
	ErrUnknownColumn = errors.New("column does not exist")

	// ErrUnknownFunction reports an unrecognized aggregate function name.
	ErrUnknownFunction = errors.New("function is not an aggregate")

	// ErrEmptyAggregate reports MIN, MAX or AVG over a table with no rows.
	ErrEmptyAggregate = errors.New("aggregate over empty table")
)
