package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Files   FilesConfig   `json:"files"`
	Wrapped WrappedConfig `json:"wrapped"`
}

// FilesConfig holds default export file paths, overridable by flags
type FilesConfig struct {
	Activities string `json:"activities"`
	Steps      string `json:"steps"`
	Sleep      string `json:"sleep"`
}

// WrappedConfig holds aggregation tuning knobs
type WrappedConfig struct {
	StepsPerMile float64 `json:"steps_per_mile"`
	TopSports    int     `json:"top_sports"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Wrapped: WrappedConfig{
			StepsPerMile: 2000,
			TopSports:    3,
		},
	}
}

// Load reads the configuration from ~/.garmin-wrapped/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Wrapped.StepsPerMile == 0 {
		cfg.Wrapped.StepsPerMile = defaults.Wrapped.StepsPerMile
	}
	if cfg.Wrapped.TopSports == 0 {
		cfg.Wrapped.TopSports = defaults.Wrapped.TopSports
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.garmin-wrapped/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Files = FilesConfig{
		Activities: "Activities.csv",
		Steps:      "Steps.csv",
		Sleep:      "Sleep.csv",
	}

	return Save(&example)
}

// Validate checks if the config has sensible values
func (c *Config) Validate() error {
	if c.Wrapped.StepsPerMile < 0 {
		return fmt.Errorf("wrapped.steps_per_mile must not be negative, got %v", c.Wrapped.StepsPerMile)
	}
	if c.Wrapped.TopSports < 0 {
		return fmt.Errorf("wrapped.top_sports must not be negative, got %v", c.Wrapped.TopSports)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".garmin-wrapped", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".garmin-wrapped"), nil
}
