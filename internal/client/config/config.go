package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/devprofiler/internal/logging"
	"github.com/spf13/pflag"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

// Config holds runtime settings for the devprofiler CLI.
//
// Fields:
//   - StorageDriver: "sqlite" (single database file) or "file" (one JSON file per key).
//   - DatabasePath: SQLite database location, used by the sqlite driver.
//   - DataDir: directory for the file driver.
//   - LogLevel / LogFormat: slog level name and "text" or "json".
//   - HTTPAddr: listen address of the local API started by "serve".
//   - ShutdownTimeout: grace period for the local API on shutdown.
type Config struct {
	StorageDriver   string        `env:"DEVPROFILER_STORAGE_DRIVER"`
	DatabasePath    string        `env:"DEVPROFILER_DB_PATH"`
	DataDir         string        `env:"DEVPROFILER_DATA_DIR"`
	LogLevel        string        `env:"DEVPROFILER_LOG_LEVEL"`
	LogFormat       string        `env:"DEVPROFILER_LOG_FORMAT"`
	HTTPAddr        string        `env:"DEVPROFILER_HTTP_ADDR"`
	ShutdownTimeout time.Duration `env:"DEVPROFILER_SHUTDOWN_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = DriverSQLite
	c.DatabasePath = "devprofiler.db"
	c.DataDir = "data"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.HTTPAddr = "127.0.0.1:8080"
	c.ShutdownTimeout = 5 * time.Second
}

// Validate reports every problem with c at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case DriverSQLite:
		if c.DatabasePath == "" {
			errs = append(errs, errors.New("db path is required for the sqlite driver"))
		}
	case DriverFile:
		if c.DataDir == "" {
			errs = append(errs, errors.New("data dir is required for the file driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.StorageDriver))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http addr must not be empty"))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("shutdown timeout must not be negative"))
	}

	return errors.Join(errs...)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if --config is given), DEVPROFILER_* environment variables
// and finally command-line flags that were set explicitly. Later sources take
// precedence over earlier ones.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}
	if err := parseFile(cfg, path); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, fs); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
