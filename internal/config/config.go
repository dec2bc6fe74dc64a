// Package config provides configuration types, defaults, and persistence
// for vimkit.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/log"
)

// Config holds all configuration options for vimkit.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	VimMode     bool   `mapstructure:"vim_mode"`     // Enable vim keybindings in text inputs
	DefaultMode string `mapstructure:"default_mode"` // "insert" (default) or "normal"
	Placeholder string `mapstructure:"placeholder"`  // Placeholder text for empty inputs
}

// LogConfig holds debug logging configuration.
type LogConfig struct {
	Path  string `mapstructure:"path"`  // Log file path; empty uses the default location
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			VimMode:     true,
			DefaultMode: "insert",
			Placeholder: "Type something...",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// StartMode maps the configured default_mode to an engine mode.
// Unrecognized values fall back to Insert.
func (u UIConfig) StartMode() engine.Mode {
	if u.DefaultMode == "normal" {
		return engine.ModeNormal
	}
	return engine.ModeInsert
}

// Validate checks the configuration for errors.
func Validate(cfg Config) error {
	switch cfg.UI.DefaultMode {
	case "", "insert", "normal":
	default:
		return fmt.Errorf("ui.default_mode: invalid mode %q (must be \"insert\" or \"normal\")",
			cfg.UI.DefaultMode)
	}

	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: invalid level %q (must be debug, info, warn, or error)",
			cfg.Log.Level)
	}
	return nil
}

// DefaultLogPath returns the default path for the debug log.
// Returns ~/.config/vimkit/vimkit.log or empty string if the home
// directory is unavailable.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vimkit", "vimkit.log")
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# vimkit configuration

ui:
  # Enable vim keybindings in text inputs.
  vim_mode: true

  # Starting mode when vim_mode is on: "insert" or "normal".
  default_mode: insert

  # Placeholder text for empty inputs.
  placeholder: "Type something..."

log:
  # Log file path. Leave empty for ~/.config/vimkit/vimkit.log.
  path: ""

  # Log level: debug, info, warn, error.
  level: info
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
