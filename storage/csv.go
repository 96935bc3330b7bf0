// Package storage provides the durable stores behind the tables: the
// primary delimited-text (CSV) format, and a parquet archive format for
// snapshot export and import.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/flatrel/flatrel/table"
)

// CSVStore persists one table as a delimited-text file: a header line
// naming the schema columns in order, followed by one line per row with the
// values in the same order. Everything round-trips as plain strings.
type CSVStore struct {
	path string
}

// NewCSVStore returns a store reading and writing path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *CSVStore) Path() string {
	return s.path
}

// LoadAll reads every stored row. A missing file is not an error: it means
// the table has never been saved, so there are no rows.
func (s *CSVStore) LoadAll() ([]table.Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "opening %s", s.path)
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", s.path)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]table.Row, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := table.NewRow(header, record)
		if err != nil {
			return nil, errors.Wrapf(err, "%s line %d", s.path, i+2)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SaveAll replaces the file contents with the full row set. The data goes
// to a uniquely named temporary file in the same directory first and is
// renamed over the target, so a reader never observes a partial write.
func (s *CSVStore) SaveAll(columns []string, rows []table.Row) error {
	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "creating %s", tmp)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(columns)
	if writeErr == nil {
		for _, row := range rows {
			record := make([]string, len(columns))
			for i, c := range columns {
				record[i], _ = row.Get(c)
			}
			if writeErr = w.Write(record); writeErr != nil {
				break
			}
		}
	}
	if writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}
	if closeErr := f.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(writeErr, "writing %s", tmp)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "replacing %s", s.path)
	}
	return nil
}
