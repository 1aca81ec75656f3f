// Package config loads the application configuration from the user's
// config directory, falling back to defaults when no file exists.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// DatabasePath overrides the default database location. The
	// ASCENT_DB environment variable takes precedence over both.
	DatabasePath string `yaml:"database_path"`

	// DefaultYear preselects the year in the project entry form.
	DefaultYear string `yaml:"default_year"`

	// ReportWidth is the word-wrap width for rendered reports.
	ReportWidth int `yaml:"report_width"`
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "ascent", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "ascent", "config.yaml"), nil
}

func defaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DefaultYear == "" {
		c.DefaultYear = "2025-2026"
	}
	if c.ReportWidth <= 0 {
		c.ReportWidth = 100
	}
}
