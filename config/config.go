package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the main configuration structure for the monitor tools.
type Config struct {
	// PortMatch is a case-insensitive substring selecting which input
	// ports to watch. Empty watches every port.
	PortMatch string `json:"portMatch,omitempty"`
	// AutoConnect opens matching ports as they appear.
	AutoConnect bool `json:"autoConnect"`
	// MaxLogLines caps the monitor's scrollback.
	MaxLogLines int `json:"maxLogLines,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		AutoConnect: true,
		MaxLogLines: 500,
	}
}

// Dir returns the config directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "midiwire"), nil
}

// Path returns the full path to config.json.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.MaxLogLines <= 0 {
		cfg.MaxLogLines = DefaultConfig().MaxLogLines
	}

	return &cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
