// Package config loads the optional flatrel.toml configuration file.
package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// Config holds the CLI settings that can come from a file. Command-line
// flags override anything set here.
type Config struct {
	// DataDir is the directory holding the table files.
	DataDir string `toml:"data_dir"`

	// Format is the default output format: json, csv or table.
	Format string `toml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{DataDir: "data", Format: "table"}
}

// Load reads path and overlays it on the defaults. A missing file is not
// an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = Default().DataDir
	}
	if cfg.Format == "" {
		cfg.Format = Default().Format
	}
	return cfg, nil
}
