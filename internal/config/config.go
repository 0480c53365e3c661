package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flixlens/flixlens/internal/catalog"
)

// AppConfig holds the persisted application settings.
type AppConfig struct {
	// CSVPath is the default catalog source consulted when --csv is not
	// given.
	CSVPath string `json:"csv_path"`

	// Loader behavior
	StrictLoad   bool   `json:"strict_load"`
	OnParseError string `json:"on_parse_error"`

	// DateDescending selects the initial sort direction used by the
	// browse UI when toggling the date sort.
	DateDescending bool `json:"date_descending"`

	// Diagnostics logging
	EnableLogging    bool `json:"enable_logging"`
	LogRetentionDays int  `json:"log_retention_days"`
}

// DefaultConfig returns the default application configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		CSVPath:          "netflix_titles.csv",
		StrictLoad:       false,
		OnParseError:     catalog.DefaultToZero.String(),
		DateDescending:   false,
		EnableLogging:    true,
		LogRetentionDays: 30,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".flixlens", "config.json"), nil
}

// Load reads the configuration from disk
func Load() (*AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fill in any missing fields with defaults
	defaults := DefaultConfig()
	if cfg.CSVPath == "" {
		cfg.CSVPath = defaults.CSVPath
	}
	if cfg.OnParseError == "" {
		cfg.OnParseError = defaults.OnParseError
	}
	if cfg.LogRetentionDays == 0 {
		cfg.LogRetentionDays = defaults.LogRetentionDays
	}

	if _, err := catalog.ParseParseErrorPolicy(cfg.OnParseError); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoaderOptions translates the persisted settings into loader options.
func (cfg *AppConfig) LoaderOptions() (catalog.Options, error) {
	policy, err := catalog.ParseParseErrorPolicy(cfg.OnParseError)
	if err != nil {
		return catalog.Options{}, err
	}
	return catalog.Options{OnParseError: policy, Strict: cfg.StrictLoad}, nil
}

// Save writes the configuration to disk
func (cfg *AppConfig) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
