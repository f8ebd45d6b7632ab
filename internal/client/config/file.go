package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file decoding. Durations
// are kept as strings ("5s") and parsed after decoding.
type FileConfig struct {
	StorageDriver   string `json:"storage_driver" yaml:"storage_driver" toml:"storage_driver"`
	DatabasePath    string `json:"db_path" yaml:"db_path" toml:"db_path"`
	DataDir         string `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	LogLevel        string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat       string `json:"log_format" yaml:"log_format" toml:"log_format"`
	HTTPAddr        string `json:"http_addr" yaml:"http_addr" toml:"http_addr"`
	ShutdownTimeout string `json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// parseFile overlays cfg with values from the file at path. The format is
// picked by extension: .json, .yaml/.yml or .toml. ${VAR} references in the
// file are expanded from the environment before decoding. Keys that are
// missing or empty in the file keep their current values.
func parseFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	expanded := os.ExpandEnv(string(data))

	var fc FileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal([]byte(expanded), &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal([]byte(expanded), &fc)
	case ".toml":
		_, err = toml.Decode(expanded, &fc)
	default:
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) error {
	overlay(&cfg.StorageDriver, fc.StorageDriver)
	overlay(&cfg.DatabasePath, fc.DatabasePath)
	overlay(&cfg.DataDir, fc.DataDir)
	overlay(&cfg.LogLevel, fc.LogLevel)
	overlay(&cfg.LogFormat, fc.LogFormat)
	overlay(&cfg.HTTPAddr, fc.HTTPAddr)

	if fc.ShutdownTimeout != "" {
		d, err := time.ParseDuration(fc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("parsing shutdown_timeout: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
