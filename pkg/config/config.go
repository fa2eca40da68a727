// Package config loads viewer settings from .studio/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/casskell/outline_viewer/pkg/model"
)

// Config holds viewer settings. Zero values fall back to defaults on Load.
type Config struct {
	OutlinePath     string `yaml:"outline_path"`
	NotesDBPath     string `yaml:"notes_db_path"`
	DebounceMs      int    `yaml:"debounce_ms"`
	DefaultCategory string `yaml:"default_category"`
	Theme           string `yaml:"theme"`
	Author          string `yaml:"author"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		OutlinePath: filepath.Join(".studio", "outline.jsonl"),
		NotesDBPath: filepath.Join(".studio", "notes.db"),
		DebounceMs:  250,
		Theme:       "dracula",
	}
}

// Load reads .studio/config.yaml under repoPath, filling unset fields
// with defaults. A missing file is not an error: defaults are returned.
func Load(repoPath string) (Config, error) {
	cfg := Default()

	path := filepath.Join(repoPath, ".studio", "config.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.OutlinePath == "" {
		cfg.OutlinePath = Default().OutlinePath
	}
	if cfg.NotesDBPath == "" {
		cfg.NotesDBPath = Default().NotesDBPath
	}
	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = Default().DebounceMs
	}
	if cfg.Theme == "" {
		cfg.Theme = Default().Theme
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings that would misbehave at runtime.
func (c Config) Validate() error {
	if c.DefaultCategory != "" && !model.Category(c.DefaultCategory).IsValid() {
		return fmt.Errorf("invalid default_category: %s", c.DefaultCategory)
	}
	if c.DebounceMs > 10_000 {
		return fmt.Errorf("debounce_ms too large: %d", c.DebounceMs)
	}
	return nil
}

// Debounce returns the reload debounce window as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}
