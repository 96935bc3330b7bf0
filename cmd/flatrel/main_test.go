package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the CLI against a config and data directory under
// dir, failing the test on any command error.
func runCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "flatrel.toml"),
		"--data-dir", filepath.Join(dir, "data"),
	}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return buf.String()
}

func TestSeedThenQuery(t *testing.T) {
	dir := t.TempDir()

	runCommand(t, dir, "seed")

	out := runCommand(t, dir, "select", "employees", "1", "2")
	for _, want := range []string{"Alice", "Bob"} {
		if !strings.Contains(out, want) {
			t.Errorf("select output missing %q:\n%s", want, out)
		}
	}

	out = runCommand(t, dir, "--format", "json", "select", "departments", "Engineering")
	if !strings.Contains(out, `"department_name":"Engineering"`) {
		t.Errorf("select departments output = %q", out)
	}

	out = runCommand(t, dir, "aggregate", "employees", "salary", "sum")
	if !strings.Contains(out, "170000") {
		t.Errorf("aggregate output = %q, want 170000", out)
	}

	out = runCommand(t, dir, "--format", "csv", "join",
		"--tables", "employees,departments",
		"--on", "employees.department_id=departments.id")
	if !strings.Contains(out, "employees.name") || !strings.Contains(out, "Engineering") {
		t.Errorf("join output = %q", out)
	}

	out = runCommand(t, dir, "tables")
	if !strings.Contains(out, "employees (id, name, age, salary, department_id): 2 rows") {
		t.Errorf("tables output = %q", out)
	}
}

func TestInsertPersistsAcrossInvocations(t *testing.T) {
	dir := t.TempDir()

	runCommand(t, dir, "insert", "departments", "5,Support")

	out := runCommand(t, dir, "--format", "csv", "select", "departments", "Support")
	if !strings.Contains(out, "5,Support") {
		t.Errorf("select output = %q, want row 5,Support", out)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	snapshot := filepath.Join(dir, "employees.parquet")

	runCommand(t, dir, "seed")
	runCommand(t, dir, "export", "employees", snapshot)
	runCommand(t, dir, "import", "employees", snapshot)

	out := runCommand(t, dir, "--format", "csv", "select", "employees", "1", "2")
	for _, want := range []string{"1,Alice,30,70000,1", "2,Bob,29,100000,1"} {
		if !strings.Contains(out, want) {
			t.Errorf("select output missing %q:\n%s", want, out)
		}
	}
}
