// Package config loads server configuration: the API token from the
// process environment plus an optional YAML file for tunables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vontell/toggl-track-mcp/internal/daterange"
)

// Config holds everything the server needs at runtime. The API token is
// deliberately env-only so it never ends up in a config file on disk.
type Config struct {
	// DefaultWorkspaceID selects the workspace used when starting a timer.
	// Zero means "first workspace in the account", which is right for the
	// common single-workspace case.
	DefaultWorkspaceID int `yaml:"default_workspace_id"`

	// Lookback windows in days for unspecified date ranges.
	EntriesWindowDays int `yaml:"entries_window_days"`
	SearchWindowDays  int `yaml:"search_window_days"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		EntriesWindowDays: daterange.EntriesWindow,
		SearchWindowDays:  daterange.SearchWindow,
	}
}

// Load reads the optional YAML config file. Path resolution: the explicit
// argument, else $TOGGL_MCP_CONFIG, else ./config.yaml. A missing file is
// not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("TOGGL_MCP_CONFIG")
	}
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.EntriesWindowDays <= 0 {
		cfg.EntriesWindowDays = daterange.EntriesWindow
	}
	if cfg.SearchWindowDays <= 0 {
		cfg.SearchWindowDays = daterange.SearchWindow
	}
	return cfg, nil
}
