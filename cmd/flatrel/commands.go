package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flatrel/flatrel/table"
)

func newTablesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the registered tables and their schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.openRegistry()
			if err != nil {
				return err
			}
			for _, name := range registry.Names() {
				t, _ := registry.Table(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %d rows\n",
					name, strings.Join(t.Schema(), ", "), len(t.Rows()))
			}
			return nil
		},
	}
}

// seedRecords is the example data set. Records that are already present
// are skipped, so seeding is rerunnable.
var seedRecords = []struct {
	table  string
	record string
}{
	{"employees", "1,Alice,30,70000,1"},
	{"employees", "2,Bob,29,100000,1"},
	{"departments", "1,Engineering"},
	{"employees_leaves", "1,1,01.06.2025,01.07.2025"},
	{"employees_leaves", "2,2,10.09.2025,24.09.2025"},
}

func newSeedCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the example data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.openRegistry()
			if err != nil {
				return err
			}
			for _, seed := range seedRecords {
				err := registry.Insert(seed.table, seed.record)
				var constraint *table.ConstraintError
				if errors.As(err, &constraint) {
					fmt.Fprintf(os.Stderr, "skipping %s %q: %v\n", seed.table, seed.record, err)
					continue
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newInsertCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "insert <table> <record>",
		Short: "Insert a comma-delimited record into a table",
		Long: `Insert a comma-delimited record into a table. Fields map positionally
to the table's schema columns.

Example:
  flatrel insert employees "3,Carol,41,120000,1"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.openRegistry()
			if err != nil {
				return err
			}
			return registry.Insert(args[0], args[1])
		},
	}
}

func newSelectCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "select <table> <arg> [arg]",
		Short: "Select rows from a table",
		Long: `Select rows from a table. employees and employees_leaves take an
inclusive integer id range; departments takes an exact name.

Examples:
  flatrel select employees 1 10
  flatrel select departments Engineering`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.openRegistry()
			if err != nil {
				return err
			}
			rows, err := registry.Select(args[0], args[1:]...)
			if err != nil {
				return err
			}
			formatter, err := opts.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return formatter.Format(rows)
		},
	}
}

func newJoinCommand(opts *options) *cobra.Command {
	var tables []string
	var on []string

	cmd := &cobra.Command{
		Use:   "join --tables a,b[,c...] --on left=right [--on left=right...]",
		Short: "Equi-join tables along a chain of key pairs",
		Long: `Equi-join tables along a chain of key pairs. Every key is a
table.column reference; result columns are namespaced the same way.

Example:
  flatrel join --tables employees,departments \
    --on employees.department_id=departments.id`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([][2]string, 0, len(on))
			for _, condition := range on {
				left, right, ok := strings.Cut(condition, "=")
				if !ok {
					return fmt.Errorf("--on %q must have the form table.column=table.column", condition)
				}
				keys = append(keys, [2]string{left, right})
			}

			registry, err := opts.openRegistry()
			if err != nil {
				return err
			}
			rows, err := registry.Join(tables, keys)
			if err != nil {
				return err
			}
			formatter, err := opts.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return formatter.Format(rows)
		},
	}

	cmd.Flags().StringSliceVar(&tables, "tables", nil, "tables taking part in the join, in chain order")
	cmd.Flags().StringArrayVar(&on, "on", nil, "join condition left=right (repeatable)")
	_ = cmd.MarkFlagRequired("tables")
	_ = cmd.MarkFlagRequired("on")
	return cmd
}

func newAggregateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "aggregate <table> <column> <function>",
		Short: "Reduce a numeric column (COUNT, SUM, MIN, MAX, AVG)",
		Long: `Reduce a numeric column of one table. The function name is matched
case-insensitively against COUNT, SUM, MIN, MAX and AVG.

Example:
  flatrel aggregate employees salary avg`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.openRegistry()
			if err != nil {
				return err
			}
			result, err := registry.Aggregate(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
