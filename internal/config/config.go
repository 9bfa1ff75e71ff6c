package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the clock-watch application
type Config struct {
	Session     SessionConfig
	Display     DisplayConfig
	Archive     ArchiveConfig
	Application ApplicationConfig
}

// SessionConfig holds live-session and validation configuration
type SessionConfig struct {
	TickInterval      time.Duration `env:"CW_TICK_INTERVAL"`
	AutoClose         bool          `env:"CW_SESSION_AUTO_CLOSE"`
	MismatchTolerance int           `env:"CW_MISMATCH_TOLERANCE"` // whole minutes
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Color      bool   `env:"CW_DISPLAY_COLOR"`
	TimeFormat string `env:"CW_TIME_DISPLAY_FORMAT"`
}

// ArchiveConfig holds the optional SQLite ledger configuration
type ArchiveConfig struct {
	Enabled        bool          `env:"CW_ARCHIVE_ENABLED"`
	Dir            string        `env:"CW_ARCHIVE_DIR"`
	Filename       string        `env:"CW_ARCHIVE_FILENAME"`
	QueryTimeout   time.Duration `env:"CW_ARCHIVE_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"CW_ARCHIVE_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"CW_ARCHIVE_DIR_PERMISSIONS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"CW_APP_TIMEOUT"`
	Verbose bool          `env:"CW_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultArchiveDir := filepath.Join(homeDir, ".cw")

	return &Config{
		Session: SessionConfig{
			TickInterval:      time.Second,
			AutoClose:         true,
			MismatchTolerance: 0,
		},
		Display: DisplayConfig{
			Color:      true,
			TimeFormat: "15:04:05",
		},
		Archive: ArchiveConfig{
			Enabled:        false,
			Dir:            defaultArchiveDir,
			Filename:       "cw.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetArchivePath returns the full path to the ledger database file
func (c *Config) GetArchivePath() string {
	return filepath.Join(c.Archive.Dir, c.Archive.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Session configuration
	if interval := os.Getenv("CW_TICK_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Session.TickInterval = d
		}
	}
	if autoClose := os.Getenv("CW_SESSION_AUTO_CLOSE"); autoClose != "" {
		if b, err := strconv.ParseBool(autoClose); err == nil {
			c.Session.AutoClose = b
		}
	}
	if tolerance := os.Getenv("CW_MISMATCH_TOLERANCE"); tolerance != "" {
		if n, err := strconv.Atoi(tolerance); err == nil {
			c.Session.MismatchTolerance = n
		}
	}

	// Display configuration
	if colorEnabled := os.Getenv("CW_DISPLAY_COLOR"); colorEnabled != "" {
		if b, err := strconv.ParseBool(colorEnabled); err == nil {
			c.Display.Color = b
		}
	}
	if format := os.Getenv("CW_TIME_DISPLAY_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}

	// Archive configuration
	if enabled := os.Getenv("CW_ARCHIVE_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			c.Archive.Enabled = b
		}
	}
	if dir := os.Getenv("CW_ARCHIVE_DIR"); dir != "" {
		c.Archive.Dir = dir
	}
	if filename := os.Getenv("CW_ARCHIVE_FILENAME"); filename != "" {
		c.Archive.Filename = filename
	}
	if timeout := os.Getenv("CW_ARCHIVE_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Archive.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("CW_ARCHIVE_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Archive.WriteTimeout = d
		}
	}
	if perms := os.Getenv("CW_ARCHIVE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Archive.DirPermissions = uint32(p)
		}
	}

	// Application configuration
	if timeout := os.Getenv("CW_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("CW_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Session.TickInterval <= 0 {
		return &ConfigError{Field: "session.tick_interval", Message: "tick interval must be positive"}
	}
	if c.Session.MismatchTolerance < 0 {
		return &ConfigError{Field: "session.mismatch_tolerance", Message: "mismatch tolerance cannot be negative"}
	}

	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}

	if c.Archive.Enabled {
		if c.Archive.Dir == "" {
			return &ConfigError{Field: "archive.dir", Message: "archive directory cannot be empty"}
		}
		if c.Archive.Filename == "" {
			return &ConfigError{Field: "archive.filename", Message: "archive filename cannot be empty"}
		}
		if c.Archive.QueryTimeout <= 0 {
			return &ConfigError{Field: "archive.query_timeout", Message: "query timeout must be positive"}
		}
		if c.Archive.WriteTimeout <= 0 {
			return &ConfigError{Field: "archive.write_timeout", Message: "write timeout must be positive"}
		}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
