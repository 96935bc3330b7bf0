// Command flatrel keeps a fixed set of tables (employees, departments,
// employees_leaves) in delimited text files and exposes insert, select,
// join and aggregate operations over them.
package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flatrel/flatrel/config"
	"github.com/flatrel/flatrel/database"
	"github.com/flatrel/flatrel/output"
	"github.com/flatrel/flatrel/storage"
	"github.com/flatrel/flatrel/table"
)

// options carries the persistent flag and config state shared by every
// command. Flags override config file values.
type options struct {
	configPath string
	dataDir    string
	format     string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "flatrel",
		Short: "A flat-file relational store with joins and aggregation",
		Long: `flatrel keeps a fixed set of tables in delimited text files and exposes
insert, select, join and aggregate operations over them.

Tables: employees (id, name, age, salary, department_id),
departments (id, department_name),
employees_leaves (id, employee_id, start_date, end_date).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "flatrel.toml", "path to the TOML config file")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory holding the table files (overrides config)")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format: json, csv or table (overrides config)")

	cmd.AddCommand(
		newTablesCommand(opts),
		newSeedCommand(opts),
		newInsertCommand(opts),
		newSelectCommand(opts),
		newJoinCommand(opts),
		newAggregateCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
	)
	return cmd
}

// tableDefs fixes the table set: registry name, file name and constructor.
var tableDefs = []struct {
	name string
	make func(table.Store) table.Table
}{
	{"employees", func(s table.Store) table.Table { return table.NewEmployee(s) }},
	{"departments", func(s table.Store) table.Table { return table.NewDepartment(s) }},
	{"employees_leaves", func(s table.Store) table.Table { return table.NewLeave(s) }},
}

// openRegistry loads the config, builds the CSV-backed tables under the
// data directory, loads their durable rows and registers them.
func (o *options) openRegistry() (*database.Registry, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	if o.format == "" {
		o.format = cfg.Format
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	registry := database.NewRegistry()
	for _, def := range tableDefs {
		store := storage.NewCSVStore(filepath.Join(cfg.DataDir, def.name+".csv"))
		t := def.make(store)
		if err := t.Load(); err != nil {
			return nil, err
		}
		registry.RegisterTable(def.name, t)
	}
	return registry, nil
}

// formatter returns the output formatter selected by flags or config.
// Valid only after openRegistry has resolved the config.
func (o *options) formatter(w io.Writer) (output.Formatter, error) {
	return output.New(o.format, w)
}
