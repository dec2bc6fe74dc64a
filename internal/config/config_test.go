package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/vimkit/internal/engine"
)

// yamlConfig mirrors Config with yaml tags for round-trip assertions;
// the real structs are decoded through viper's mapstructure path.
type yamlConfig struct {
	UI struct {
		VimMode     bool   `yaml:"vim_mode"`
		DefaultMode string `yaml:"default_mode"`
		Placeholder string `yaml:"placeholder"`
	} `yaml:"ui"`
	Log struct {
		Path  string `yaml:"path"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func readYAML(t *testing.T, path string) yamlConfig {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg yamlConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

func TestValidate_InvalidDefaultMode(t *testing.T) {
	cfg := Defaults()
	cfg.UI.DefaultMode = "visual"

	err := Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ui.default_mode")
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Defaults()
	cfg.Log.Level = "trace"

	err := Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "log.level")
}

func TestStartMode(t *testing.T) {
	assert.Equal(t, engine.ModeInsert, UIConfig{DefaultMode: "insert"}.StartMode())
	assert.Equal(t, engine.ModeNormal, UIConfig{DefaultMode: "normal"}.StartMode())
	assert.Equal(t, engine.ModeInsert, UIConfig{DefaultMode: ""}.StartMode())
	assert.Equal(t, engine.ModeInsert, UIConfig{DefaultMode: "bogus"}.StartMode())
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	cfg := readYAML(t, path)
	assert.True(t, cfg.UI.VimMode)
	assert.Equal(t, "insert", cfg.UI.DefaultMode)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestSaveUI_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveUI(path, UIConfig{VimMode: false, DefaultMode: "normal", Placeholder: "hi"}))

	cfg := readYAML(t, path)
	assert.False(t, cfg.UI.VimMode)
	assert.Equal(t, "normal", cfg.UI.DefaultMode)
	assert.Equal(t, "hi", cfg.UI.Placeholder)
}

func TestSaveUI_PreservesOtherSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	seed := "# my config\nlog:\n  level: debug\nui:\n  vim_mode: true\n"
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	require.NoError(t, SaveUI(path, UIConfig{VimMode: false, DefaultMode: "insert"}))

	cfg := readYAML(t, path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.UI.VimMode)
	assert.Equal(t, "insert", cfg.UI.DefaultMode)
}
