package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config lookup at an empty temp dir and clears env overrides
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvThemeFile, "")
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "taskdesk")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.ViewTask != "enter" {
		t.Errorf("Default ViewTask key = %s, want enter", defaults.ViewTask)
	}
	if defaults.ChangeStatus != "s" {
		t.Errorf("Default ChangeStatus key = %s, want s", defaults.ChangeStatus)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
	assert.NotEmpty(t, cfg.Daemon.Socket)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `api_url: "https://tasks.example.com/"
page_size: 20
key_mappings:
  quit: "x"
  add_task: "n"
`)

	cfg, err := Load()
	require.NoError(t, err)

	// Trailing slash is trimmed so endpoint joins stay clean
	assert.Equal(t, "https://tasks.example.com", cfg.APIURL)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "n", cfg.KeyMappings.AddTask)

	// Unspecified values should use defaults
	assert.Equal(t, "e", cfg.KeyMappings.EditTask)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `api_url: "https://file.example.com"`)
	t.Setenv(EnvAPIURL, "http://127.0.0.1:9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.APIURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("page size", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, dir, "page_size: 15\n")
		_, err := Load()
		assert.ErrorContains(t, err, "page_size")
	})

	t.Run("api url scheme", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, dir, "api_url: ftp://example.com\n")
		_, err := Load()
		assert.ErrorContains(t, err, "api_url")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, dir, "page_size: [\n")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	cfg.KeyMappings.Quit = "x"
	cfg.PageSize = 30

	require.NoError(t, cfg.Save())

	configPath := filepath.Join(dir, "taskdesk", "config.yaml")
	_, err := os.Stat(configPath)
	require.NoError(t, err, "config file not created at %s", configPath)

	cfg2, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "x", cfg2.KeyMappings.Quit)
	assert.Equal(t, 30, cfg2.PageSize)
}
