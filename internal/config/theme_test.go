package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  status_completed: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.StatusCompleted != "#0000FF" {
		t.Errorf("Expected status_completed to be #0000FF, got %s", cfg.ColorScheme.StatusCompleted)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}

func TestMonochromePreset(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	scheme.ApplyDefaults()

	mono := MonochromeColorScheme()
	if scheme.Accent != "#123456" {
		t.Errorf("custom accent overwritten: %s", scheme.Accent)
	}
	if scheme.ErrorBg != mono.ErrorBg {
		t.Errorf("Expected monochrome error_bg %s, got %s", mono.ErrorBg, scheme.ErrorBg)
	}
}
