package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/flatrel/flatrel/table"
)

func sampleRows(t *testing.T) []table.Row {
	t.Helper()
	columns := []string{"id", "name", "age"}
	var rows []table.Row
	for _, values := range [][]string{
		{"1", "Alice", "30"},
		{"2", "Bob", "29"},
	} {
		row, err := table.NewRow(columns, values)
		if err != nil {
			t.Fatalf("NewRow() error = %v", err)
		}
		rows = append(rows, row)
	}
	return rows
}

func TestNewFormatter(t *testing.T) {
	for _, name := range []string{"json", "jsonl", "csv", "table"} {
		if _, err := New(name, &bytes.Buffer{}); err != nil {
			t.Errorf("New(%q) error = %v", name, err)
		}
	}
	if _, err := New("yaml", &bytes.Buffer{}); err == nil {
		t.Errorf("New(yaml) expected error")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	if err := formatter.Format(sampleRows(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `{"id":"1","name":"Alice","age":"30"}
{"id":"2","name":"Bob","age":"29"}
`
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(nil); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format() wrote %q for empty rows", buf.String())
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	if err := formatter.Format(sampleRows(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "id,name,age\n1,Alice,30\n2,Bob,29\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestCSVFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(nil); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format() wrote %q for empty rows", buf.String())
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)

	if err := formatter.Format(sampleRows(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"id", "name", "Alice", "Bob"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf).Format(nil); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format() wrote %q for empty rows", buf.String())
	}
}

func TestSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	formatter := NewJSONFormatter(&first)
	formatter.SetOutput(&second)

	if err := formatter.Format(sampleRows(t)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if first.Len() != 0 {
		t.Errorf("original writer received output after SetOutput")
	}
	if second.Len() == 0 {
		t.Errorf("new writer received no output")
	}
}
