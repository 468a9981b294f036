// Package config handles reading and writing the zen config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	Draw    DrawConfig    `yaml:"draw"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// DrawConfig controls the random source.
type DrawConfig struct {
	// Seed makes draws reproducible. Zero means system entropy.
	Seed uint64 `yaml:"seed"`
}

// CatalogConfig points at the optional SQLite overlay of hexagram texts.
type CatalogConfig struct {
	OverlayDB string `yaml:"overlay_db"`
}

// LogConfig controls where slog output goes. The TUI owns stdout, so an
// empty File discards logs.
type LogConfig struct {
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}

const configFile = "config.yaml"

// DefaultPath returns the config path under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "zen", configFile)
}

// ReadConfig reads the YAML config at path. Fields absent from the file keep
// their defaults.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Load reads path, returning defaults when the file does not exist.
func Load(path string) (*Config, error) {
	cfg, err := ReadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// WriteConfig writes cfg to path, creating parent directories.
func WriteConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
	}
}
