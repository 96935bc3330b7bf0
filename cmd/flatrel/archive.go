package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/flatrel/flatrel/database"
	"github.com/flatrel/flatrel/storage"
	"github.com/flatrel/flatrel/table"
)

func newExportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export <table> <file.parquet>",
		Short: "Write a parquet snapshot of a table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.openRegistry()
			if err != nil {
				return err
			}
			t, ok := registry.Table(args[0])
			if !ok {
				return errors.Wrapf(database.ErrUnknownTable, "table %q", args[0])
			}
			if err := storage.WriteParquet(args[1], t.Schema(), t.Rows()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d rows to %s\n", len(t.Rows()), args[1])
			return nil
		},
	}
}

func newImportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <table> <file.parquet>",
		Short: "Replace a table's rows from a parquet snapshot",
		Long: `Replace a table's rows from a parquet snapshot written by export.
The snapshot must carry every column of the table's schema; the rows are
reordered to the schema and saved through the table's regular store.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.openRegistry()
			if err != nil {
				return err
			}
			t, ok := registry.Table(args[0])
			if !ok {
				return errors.Wrapf(database.ErrUnknownTable, "table %q", args[0])
			}

			_, snapshot, err := storage.ReadParquet(args[1])
			if err != nil {
				return err
			}

			schema := t.Schema()
			rows := make([]table.Row, 0, len(snapshot))
			for i, raw := range snapshot {
				values := make([]string, len(schema))
				for j, column := range schema {
					v, ok := raw.Get(column)
					if !ok {
						return errors.Errorf("snapshot row %d is missing column %q", i, column)
					}
					values[j] = v
				}
				row, err := table.NewRow(schema, values)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}

			if err := t.Replace(rows); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d rows into %s\n", len(rows), args[0])
			return nil
		},
	}
}
