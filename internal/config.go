package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config carries the process-wide settings. It is loaded once per invocation
// and threaded explicitly into each service, never held in package state.
type Config struct {
	Categories      []string `json:"categories"`
	DefaultCategory string   `json:"default_category"`
	TagsEnabled     bool     `json:"tags_enabled"`
	MaxTags         int      `json:"max_tags"`
	ExportFormats   []string `json:"export_formats"`
}

func DefaultConfig() *Config {
	return &Config{
		Categories:      []string{"coding", "debugging", "meeting", "learning", "research"},
		DefaultCategory: "coding",
		TagsEnabled:     true,
		MaxTags:         5,
		ExportFormats:   []string{"json", "csv", "markdown"},
	}
}

// LoadConfig reads the config file. A missing file is written out with the
// hardcoded defaults and those defaults are returned. A malformed file is an
// error; the user has to fix or delete it.
func LoadConfig(paths Paths) (*Config, error) {
	path := paths.ConfigPath()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(paths, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s (fix or delete it to restore defaults): %w", path, err)
	}

	return &cfg, nil
}

func SaveConfig(paths Paths, cfg *Config) error {
	if err := paths.EnsureRoot(); err != nil {
		return fmt.Errorf("create devlog directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(paths.ConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// HasCategory reports whether name is one of the configured categories.
// Unknown categories are still accepted at write time; callers use this to
// warn, not to reject.
func (c *Config) HasCategory(name string) bool {
	for _, cat := range c.Categories {
		if cat == name {
			return true
		}
	}
	return false
}

// AllowsFormat reports whether an export format is enabled in the config.
func (c *Config) AllowsFormat(format string) bool {
	for _, f := range c.ExportFormats {
		if f == format {
			return true
		}
	}
	return false
}
