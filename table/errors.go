package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotNumeric reports a value that was expected to parse as an integer.
// Range selects and aggregates wrap it with the offending column and value.
var ErrNotNumeric = errors.New("value is not an integer")

// ConstraintError reports an insert that would violate a uniqueness
// constraint. Columns names the constrained column set, so a composite-key
// violation is distinguishable from a single-column one.
type ConstraintError struct {
	Columns []string
}

func (e *ConstraintError) Error() string {
	if len(e.Columns) == 1 {
		return fmt.Sprintf("column %q must be unique", e.Columns[0])
	}
	return fmt.Sprintf("group of columns (%s) must be unique", strings.Join(e.Columns, ", "))
}
