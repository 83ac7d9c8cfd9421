// Package config loads and saves the obcalc user configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidElementWeight = errors.New("element weight must be positive")
	ErrNegativeDemand       = errors.New("oxygen demand cannot be negative")
)

// Config represents the application configuration.
type Config struct {
	// Elements extends or overrides the built-in element table, keyed
	// by symbol ("W", "Mo"). The built-ins cover common fuels and
	// oxidizers; anything else goes here instead of a code change.
	Elements map[string]ElementConfig `yaml:"elements,omitempty"`
	Output   OutputConfig             `yaml:"output"`
}

// ElementConfig defines one user-supplied element.
type ElementConfig struct {
	// Weight is the atomic weight in g/mol.
	Weight float64 `yaml:"weight"`
	// OxygenDemand is the number of oxygen atoms one atom consumes on
	// complete combustion; 0 for elements that bind no oxygen.
	OxygenDemand float64 `yaml:"oxygen_demand,omitempty"`
}

// OutputConfig holds display settings.
type OutputConfig struct {
	// Precision is the number of decimals for OB% and mass % output.
	Precision int `yaml:"precision"`
}

// ConfigPaths returns all possible config file paths in priority order:
// 1. ~/.config/obcalc/config.yaml (XDG standard - priority)
// 2. ~/.obcalc/config.yaml (legacy fallback)
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "obcalc", "config.yaml"),
		filepath.Join(home, ".obcalc", "config.yaml"),
	}, nil
}

// DefaultConfigPath returns the default config file path (XDG standard).
func DefaultConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// FindConfigPath returns the first existing config file path, or the
// default path if no config file exists yet.
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return paths[0], nil
}

// PresetsPath returns the path of presets.toml next to the config file.
func PresetsPath() (string, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(configPath), "presets.toml"), nil
}

// Load reads configuration from the first available config file,
// creating a default one when none exists.
func Load() (*Config, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if saveErr := cfg.SaveTo(path); saveErr != nil {
				return nil, saveErr
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Output.Precision <= 0 {
		cfg.Output.Precision = 2
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Precision: 2},
	}
}

// Save writes configuration to the default config file.
func (c *Config) Save() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes configuration to a specific file path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks every user element entry.
func (c *Config) Validate() error {
	for symbol, e := range c.Elements {
		if e.Weight <= 0 {
			return fmt.Errorf("element %q: %w", symbol, ErrInvalidElementWeight)
		}
		if e.OxygenDemand < 0 {
			return fmt.Errorf("element %q: %w", symbol, ErrNegativeDemand)
		}
	}
	return nil
}
