package table

import (
	"fmt"
	"strconv"
)

// Employee is the employees table: one row per employee with a reference to
// the owning department.
//
// Two uniqueness constraints apply, checked in this order: the pair
// (id, department_id) must be unique, and id alone must be unique. A
// duplicate id in the same department therefore reports the composite-key
// violation, while a duplicate id in a different department reports the
// single-key one.
type Employee struct {
	base
}

// NewEmployee builds an empty employees table persisting through store.
func NewEmployee(store Store) *Employee {
	return &Employee{base{
		schema: []string{"id", "name", "age", "salary", "department_id"},
		uniques: []Unique{
			{Columns: []string{"id", "department_id"}},
			{Columns: []string{"id"}},
		},
		store: store,
	}}
}

// SelectRange returns employees whose id falls in the inclusive range
// [low, high].
func (e *Employee) SelectRange(low, high int) ([]Row, error) {
	return e.selectRange("id", low, high)
}

// Select takes two integer arguments forming an inclusive id range.
func (e *Employee) Select(args ...string) ([]Row, error) {
	low, high, err := rangeArgs(args)
	if err != nil {
		return nil, err
	}
	return e.SelectRange(low, high)
}

// Department is the departments table.
type Department struct {
	base
}

// NewDepartment builds an empty departments table persisting through store.
func NewDepartment(store Store) *Department {
	return &Department{base{
		schema: []string{"id", "department_name"},
		uniques: []Unique{
			{Columns: []string{"id"}},
		},
		store: store,
	}}
}

// SelectByName returns the departments whose department_name equals name
// exactly.
func (d *Department) SelectByName(name string) []Row {
	out := []Row{}
	for _, row := range d.rows {
		if v, _ := row.Get("department_name"); v == name {
			out = append(out, row)
		}
	}
	return out
}

// Select takes one argument: the department name to match exactly.
func (d *Department) Select(args ...string) ([]Row, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("department select takes 1 argument (name), got %d", len(args))
	}
	return d.SelectByName(args[0]), nil
}

// Leave is the employees_leaves table: one row per leave record.
type Leave struct {
	base
}

// NewLeave builds an empty leave table persisting through store.
func NewLeave(store Store) *Leave {
	return &Leave{base{
		schema: []string{"id", "employee_id", "start_date", "end_date"},
		uniques: []Unique{
			{Columns: []string{"id"}},
		},
		store: store,
	}}
}

// SelectRange returns leave records whose id falls in the inclusive range
// [low, high].
func (l *Leave) SelectRange(low, high int) ([]Row, error) {
	return l.selectRange("id", low, high)
}

// Select takes two integer arguments forming an inclusive id range.
func (l *Leave) Select(args ...string) ([]Row, error) {
	low, high, err := rangeArgs(args)
	if err != nil {
		return nil, err
	}
	return l.SelectRange(low, high)
}

func rangeArgs(args []string) (low, high int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("range select takes 2 arguments (low, high), got %d", len(args))
	}
	low, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("low bound %q: %w", args[0], ErrNotNumeric)
	}
	high, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("high bound %q: %w", args[1], ErrNotNumeric)
	}
	return low, high, nil
}
