package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/validation"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the API origin used when nothing else is configured
const DefaultAPIURL = "http://localhost:8080"

// Environment variables that override the config file
const (
	EnvAPIURL    = "TASKDESK_API_URL"
	EnvThemeFile = "TASKDESK_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	APIURL      string       `yaml:"api_url"`
	PageSize    int          `yaml:"page_size"`
	Daemon      DaemonConfig `yaml:"daemon"`
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	ColorScheme ColorScheme  `yaml:"theme"`
}

// DaemonConfig locates the optional event daemon
type DaemonConfig struct {
	Socket string `yaml:"socket"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from TASKDESK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies environment overrides on top of the file values
func applyEnv(config *Config) {
	if apiURL := os.Getenv(EnvAPIURL); apiURL != "" {
		config.APIURL = apiURL
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(readErr, os.ErrNotExist):
			return nil, readErr
		}
	}

	// Theme file and env win over the file
	loadThemeFile(&config)
	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects values the client cannot work with
func (c *Config) Validate() error {
	if err := validation.PageSize(c.PageSize); err != nil {
		return fmt.Errorf("invalid page_size in config: %w", err)
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("invalid api_url %q: must start with http:// or https://", c.APIURL)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskdesk", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskdesk", "config.yaml"), nil
}

// DataDir returns ~/.taskdesk, where the database, socket and logs live
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".taskdesk"), nil
}

// DefaultSocketPath returns the event daemon socket inside DataDir
func DefaultSocketPath() string {
	dir, err := DataDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "taskdesk-"+strconv.Itoa(os.Getuid())+".sock")
	}
	return filepath.Join(dir, "taskdesk.sock")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if c.PageSize == 0 {
		c.PageSize = models.DefaultPageSize
	}
	if c.Daemon.Socket == "" {
		c.Daemon.Socket = DefaultSocketPath()
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
