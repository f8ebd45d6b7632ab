// Package config loads runtime configuration for the devprofiler CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c / --config. JSON, YAML and TOML
//     are accepted; the format follows the file extension.
//  3. DEVPROFILER_* environment variables.
//  4. Command-line flags, which override earlier values.
//
// # File schema
//
// Durations are strings accepted by time.ParseDuration:
//
//	storage_driver: sqlite
//	db_path: ${HOME}/.devprofiler/devprofiler.db
//	log_level: debug
//	shutdown_timeout: 10s
//
// Primary API
//
//   - type Config                               : resolved settings
//   - func RegisterFlags(*pflag.FlagSet)         : declares the flags
//   - func LoadConfig(*pflag.FlagSet) (*Config, error) : defaults, file, env, flags, Validate
package config
