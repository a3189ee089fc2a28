// Package config loads the tagsel configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/tagsel/internal/match"
	"github.com/nikbrunner/tagsel/internal/output"
)

// Config holds application configuration.
type Config struct {
	Title       string `json:"title"`
	Placeholder string `json:"placeholder"`
	MatchMode   string `json:"matchMode"`
	MaxVisible  int    `json:"maxVisible"`
	Width       int    `json:"width"`
	Catalog     string `json:"catalog"` // empty = built-in chart types
	Output      string `json:"output"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Title:       "Chart type",
		Placeholder: "Try me...",
		MatchMode:   string(match.ModeSubstring),
		MaxVisible:  5,
		Width:       44,
		Output:      string(output.FormatText),
	}
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	if _, err := match.ParseMode(c.MatchMode); err != nil {
		return err
	}
	if _, err := output.ParseFormat(c.Output); err != nil {
		return err
	}
	if c.MaxVisible < 1 {
		return fmt.Errorf("maxVisible must be at least 1, got %d", c.MaxVisible)
	}
	return nil
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: defaults are usable even if the file can't be written
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Title == "" {
		config.Title = defaults.Title
	}
	if config.Placeholder == "" {
		config.Placeholder = defaults.Placeholder
	}
	if config.MatchMode == "" {
		config.MatchMode = defaults.MatchMode
	}
	if config.MaxVisible == 0 {
		config.MaxVisible = defaults.MaxVisible
	}
	if config.Width == 0 {
		config.Width = defaults.Width
	}
	if config.Output == "" {
		config.Output = defaults.Output
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/tagsel/config.json
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tagsel", "config.json"), nil
}
