// Package config loads tool settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPrecision  = 6
	defaultDebounceMS = 300
)

// EncodeConfig controls OBJ output formatting
type EncodeConfig struct {
	Precision  int   `yaml:"precision"`
	Header     *bool `yaml:"header"`     // pointer to distinguish unset vs false
	Statistics *bool `yaml:"statistics"` // pointer to distinguish unset vs false
}

// HeaderEnabled reports whether the output header is enabled
func (e EncodeConfig) HeaderEnabled() bool {
	return e.Header == nil || *e.Header
}

// StatisticsEnabled reports whether header statistics are enabled
func (e EncodeConfig) StatisticsEnabled() bool {
	return e.Statistics == nil || *e.Statistics
}

// WatchConfig controls the file watcher
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Debounce returns the debounce window as a duration
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// Config holds all tool settings
type Config struct {
	Encode EncodeConfig `yaml:"encode"`
	Watch  WatchConfig  `yaml:"watch"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.normalize()
	return cfg
}

// Load reads a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

// LoadOrDefault reads a configuration file, falling back to the built-in
// configuration when the file does not exist
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// normalize fills unset values with defaults and clamps out-of-range ones
func (c *Config) normalize() {
	if c.Encode.Precision == 0 {
		c.Encode.Precision = defaultPrecision
	}
	c.Encode.Precision = min(max(c.Encode.Precision, 1), 10)

	if c.Encode.Header == nil {
		c.Encode.Header = boolPtr(true)
	}
	if c.Encode.Statistics == nil {
		c.Encode.Statistics = boolPtr(true)
	}

	if c.Watch.DebounceMS <= 0 {
		c.Watch.DebounceMS = defaultDebounceMS
	}
}

func boolPtr(v bool) *bool {
	return &v
}
