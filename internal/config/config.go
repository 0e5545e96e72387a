// Package config provides configuration management for seedshard.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/seedshard/seedshard/internal/fileutil"
)

// Config represents the application configuration.
type Config struct {
	Version        int           `yaml:"version"`
	Home           string        `yaml:"home"`
	DictionaryPath string        `yaml:"dictionary_path"`
	Output         OutputConfig  `yaml:"output"`
	Logging        LoggingConfig `yaml:"logging"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file, starting from Defaults
// and overlaying whatever the file specifies.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file atomically, so a crash or
// concurrent reader never observes a partially written config.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return fileutil.WriteAtomic(path, data, 0o600)
}

// Path returns the default config file path under home.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the seedshard home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetDictionaryPath returns the configured dictionary file path.
func (c *Config) GetDictionaryPath() string {
	return c.DictionaryPath
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// DefaultHome returns the default seedshard home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seedshard"
	}
	return filepath.Join(home, ".seedshard")
}
