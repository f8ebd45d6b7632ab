package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by every command.
const (
	FlagConfig          = "config"
	FlagStorageDriver   = "storage"
	FlagDatabasePath    = "db"
	FlagDataDir         = "data-dir"
	FlagLogLevel        = "log-level"
	FlagLogFormat       = "log-format"
	FlagHTTPAddr        = "addr"
	FlagShutdownTimeout = "shutdown-timeout"
)

// RegisterFlags declares the configuration flags on fs. The defaults shown in
// help text come from LoadDefaults; parseFlags only copies flags the user
// actually set, so file and env values are not clobbered by defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to a .json, .yaml or .toml config file")
	fs.String(FlagStorageDriver, d.StorageDriver, "storage driver: sqlite or file")
	fs.String(FlagDatabasePath, d.DatabasePath, "SQLite database path")
	fs.String(FlagDataDir, d.DataDir, "data directory for the file driver")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.String(FlagLogFormat, d.LogFormat, "log format: text or json")
	fs.String(FlagHTTPAddr, d.HTTPAddr, "listen address for the local API")
	fs.Duration(FlagShutdownTimeout, d.ShutdownTimeout, "local API shutdown grace period")
}

// parseFlags populates Config fields from flags that were explicitly set.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	strs := map[string]*string{
		FlagStorageDriver: &cfg.StorageDriver,
		FlagDatabasePath:  &cfg.DatabasePath,
		FlagDataDir:       &cfg.DataDir,
		FlagLogLevel:      &cfg.LogLevel,
		FlagLogFormat:     &cfg.LogFormat,
		FlagHTTPAddr:      &cfg.HTTPAddr,
	}
	for name, dst := range strs {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if fs.Changed(FlagShutdownTimeout) {
		d, err := fs.GetDuration(FlagShutdownTimeout)
		if err != nil {
			return err
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}
