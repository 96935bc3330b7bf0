package table

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func mustRow(t *testing.T, columns, values []string) Row {
	t.Helper()
	row, err := NewRow(columns, values)
	if err != nil {
		t.Fatalf("NewRow() error = %v", err)
	}
	return row
}

func TestNewRowLengthMismatch(t *testing.T) {
	if _, err := NewRow([]string{"id", "name"}, []string{"1"}); err == nil {
		t.Errorf("NewRow() expected error for mismatched lengths")
	}
}

func TestRowValuesOrder(t *testing.T) {
	row := mustRow(t, []string{"id", "name", "age"}, []string{"1", "Alice", "30"})

	if got := row.Columns(); !reflect.DeepEqual(got, []string{"id", "name", "age"}) {
		t.Errorf("Columns() = %v", got)
	}
	if got := row.Values(); !reflect.DeepEqual(got, []string{"1", "Alice", "30"}) {
		t.Errorf("Values() = %v", got)
	}
	if v, ok := row.Get("name"); !ok || v != "Alice" {
		t.Errorf("Get(name) = %q, %v", v, ok)
	}
	if _, ok := row.Get("salary"); ok {
		t.Errorf("Get(salary) expected missing column")
	}
}

func TestRowInt(t *testing.T) {
	row := mustRow(t, []string{"id", "name"}, []string{"42", "Alice"})

	n, err := row.Int("id")
	if err != nil {
		t.Fatalf("Int(id) error = %v", err)
	}
	if n != 42 {
		t.Errorf("Int(id) = %d, want 42", n)
	}

	if _, err := row.Int("name"); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("Int(name) error = %v, want ErrNotNumeric", err)
	}
	if _, err := row.Int("missing"); err == nil {
		t.Errorf("Int(missing) expected error")
	}
}

func TestRowNamespaced(t *testing.T) {
	row := mustRow(t, []string{"id", "name"}, []string{"1", "Alice"})
	namespaced := row.Namespaced("employees")

	if got := namespaced.Columns(); !reflect.DeepEqual(got, []string{"employees.id", "employees.name"}) {
		t.Errorf("Namespaced() columns = %v", got)
	}
	if v, _ := namespaced.Get("employees.name"); v != "Alice" {
		t.Errorf("Namespaced() value = %q, want Alice", v)
	}
	// The original row is untouched.
	if _, ok := row.Get("employees.id"); ok {
		t.Errorf("Namespaced() mutated the receiver")
	}
}

func TestRowMerge(t *testing.T) {
	left := mustRow(t, []string{"a.id", "a.name"}, []string{"1", "Alice"})
	right := mustRow(t, []string{"b.id", "b.city"}, []string{"1", "Berlin"})

	merged := left.Merge(right)
	want := []string{"a.id", "a.name", "b.id", "b.city"}
	if got := merged.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() columns = %v, want %v", got, want)
	}
	if v, _ := merged.Get("b.city"); v != "Berlin" {
		t.Errorf("Merge() b.city = %q", v)
	}
}

func TestRowMergeCollision(t *testing.T) {
	left := mustRow(t, []string{"id", "name"}, []string{"1", "Alice"})
	right := mustRow(t, []string{"id", "city"}, []string{"2", "Berlin"})

	merged := left.Merge(right)
	// Right-hand value wins, column keeps its original position.
	if v, _ := merged.Get("id"); v != "2" {
		t.Errorf("Merge() id = %q, want 2", v)
	}
	want := []string{"id", "name", "city"}
	if got := merged.Columns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() columns = %v, want %v", got, want)
	}
}

func TestRowMarshalJSONKeepsOrder(t *testing.T) {
	row := mustRow(t, []string{"id", "name", "age"}, []string{"1", "Alice", "30"})

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"id":"1","name":"Alice","age":"30"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
