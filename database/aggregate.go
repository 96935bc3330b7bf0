package database

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Aggregate reduces one column of the named table with the named function.
// The function name is matched case-insensitively against COUNT, SUM, MIN,
// MAX and AVG. Every value in the column is parsed as an integer before the
// reduction runs, COUNT included; a non-numeric value fails with an error
// wrapping table.ErrNotNumeric.
//
// COUNT, SUM, MIN and MAX yield int64; AVG yields float64. On an empty
// table COUNT and SUM yield 0 while MIN, MAX and AVG fail wrapping
// ErrEmptyAggregate.
func (r *Registry) Aggregate(name, column, function string) (interface{}, error) {
	t, ok := r.tables[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTable, "table %q", name)
	}
	if !slices.Contains(t.Schema(), column) {
		return nil, errors.Wrapf(ErrUnknownColumn, "table %q has no column %q", name, column)
	}
	fn := strings.ToUpper(function)
	switch fn {
	case "COUNT", "SUM", "MIN", "MAX", "AVG":
	default:
		return nil, errors.Wrapf(ErrUnknownFunction, "function %q", function)
	}

	rows := t.Rows()
	values := make([]int64, len(rows))
	for i, row := range rows {
		n, err := row.Int(column)
		if err != nil {
			return nil, err
		}
		values[i] = int64(n)
	}

	switch fn {
	case "COUNT":
		return int64(len(values)), nil
	case "SUM":
		return sum(values), nil
	case "MIN":
		if len(values) == 0 {
			return nil, errors.Wrapf(ErrEmptyAggregate, "MIN(%s.%s)", name, column)
		}
		return slices.Min(values), nil
	case "MAX":
		if len(values) == 0 {
			return nil, errors.Wrapf(ErrEmptyAggregate, "MAX(%s.%s)", name, column)
		}
		return slices.Max(values), nil
	default: // AVG
		if len(values) == 0 {
			return nil, errors.Wrapf(ErrEmptyAggregate, "AVG(%s.%s)", name, column)
		}
		return float64(sum(values)) / float64(len(values)), nil
	}
}

func sum(values []int64) int64 {
	var total int64
	for _, v := range values {
		total += v
	}
	return total
}
