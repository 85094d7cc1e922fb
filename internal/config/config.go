// Package config provides JSON-based application configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const configFile = "config.json"

// Config holds the application settings.
type Config struct {
	// DataDir is where progress snapshots are stored.
	DataDir string `json:"data_dir,omitempty"`

	// RemoteBaseURL is the progress sync service; empty disables remote
	// reconciliation.
	RemoteBaseURL string `json:"remote_base_url,omitempty"`

	// PreviewCellSize is the rendered size of one chart cell in pixels.
	PreviewCellSize int `json:"preview_cell_size,omitempty"`

	path string
}

// Load reads ~/.config/stitch-tracker/config.json, falling back to defaults
// when the file doesn't exist.
func Load() *Config {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	dir := filepath.Join(configDir, "stitch-tracker")

	c := &Config{
		DataDir:         filepath.Join(dir, "progress"),
		PreviewCellSize: 8,
		path:            filepath.Join(dir, configFile),
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return c
	}
	_ = json.Unmarshal(data, c)
	if c.PreviewCellSize <= 0 {
		c.PreviewCellSize = 8
	}
	return c
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
