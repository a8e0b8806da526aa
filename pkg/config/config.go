// Package config provides configuration management for gndwca.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Import: delimiter, header_lines
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Import.InputPath, Table, Source (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNDWCA_ prefix with underscores for nesting:
//
//	GNDWCA_DATABASE_HOST=localhost
//	GNDWCA_DATABASE_PORT=5432
//	GNDWCA_IMPORT_DELIMITER=tab
//	GNDWCA_LOG_LEVEL=info
//	GNDWCA_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gndwca configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Import contains settings specific to the build command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	// It is created on the first build run if it does not exist yet.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of rows per bulk-load batch during
	// export and merge. Each full batch is handed to a load worker, so the
	// value also bounds how much row data is in flight at once.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ImportConfig contains settings specific to the build command.
type ImportConfig struct {
	// Delimiter is the field separator of the taxon file.
	// Stored as a single character; the aliases "tab", "comma" and "pipe"
	// are accepted and normalized by OptImportDelimiter.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// HeaderLines is the number of lines at the top of the taxon file that
	// hold column names instead of data. The last of them provides the
	// column schema for the target table.
	HeaderLines int `mapstructure:"header_lines" yaml:"header_lines"`

	// InputPath is the taxon file to import: a plain delimited file, a
	// DwCA zip archive, or an http(s) URL to either.
	// Runtime-only, comes from the CLI argument.
	InputPath string

	// Table is the target table name. When empty, it is derived from the
	// selected nomenclature source as taxon_<source>.
	// Runtime-only, comes from a CLI flag or the interactive picker.
	Table string

	// Source is the key of a nomenclature source from sources.yaml
	// (for example "col" or "gbif").
	// Runtime-only, comes from a CLI flag or the interactive picker.
	Source string
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "dwca_taxons",
			SSLMode:   "disable",
			BatchSize: 100, // rows per load-worker batch
		},
		Import: ImportConfig{
			Delimiter:   "\t",
			HeaderLines: 1,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
