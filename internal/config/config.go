// Package config holds funcov configuration, loaded from a .funcov.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file funcov looks for in the working
// directory when no --config flag is given.
const DefaultFileName = ".funcov.yaml"

// Config holds all funcov configuration.
type Config struct {
	// Storage settings
	Storage StorageConfig `yaml:"storage"`

	// Report rendering
	Report ReportConfig `yaml:"report"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig configures where coverage data lives.
type StorageConfig struct {
	// File is the default coverage file used when a command's positional
	// argument is omitted.
	File string `yaml:"file"`
}

// ReportConfig configures report rendering.
type ReportConfig struct {
	Format string `yaml:"format"` // text, json
	Color  bool   `yaml:"color"`  // lipgloss styling for text output
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{File: "coverage.json"},
		Report:  ReportConfig{Format: "text", Color: true},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// Load reads a config file over the defaults. A missing file at the default
// location is not an error; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
