// Package config loads and persists fintrack configuration.
// Configuration lives in <state dir>/config.yaml (usually ~/.fintrack),
// with environment variables taking precedence over the file and a .env
// file in the working directory loaded first for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all fintrack configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Remote expense API
	API APIConfig `yaml:"api"`

	// UI settings
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the remote expense API gateway.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout is optional; empty or "0" means no client-side timeout,
	// matching the upstream client's behavior of waiting indefinitely.
	Timeout string `yaml:"timeout"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	Theme    string `yaml:"theme"` // auto, light, dark
	Currency string `yaml:"currency"`
}

// LoggingConfig configures the category file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
	Level      string          `yaml:"level"` // debug, info, warn, error
}

// DefaultBaseURL is the mock expense API the client was built against.
const DefaultBaseURL = "https://67ac71475853dfff53dab929.mockapi.io/api/v1"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "fintrack",
		Version: "1.0.0",

		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: "",
		},

		UI: UIConfig{
			Theme:    "auto",
			Currency: "$",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// StateDir returns the fintrack state directory (~/.fintrack), creating
// nothing. Callers that need it on disk use EnsureStateDir.
func StateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".fintrack"), nil
}

// EnsureStateDir returns the state directory, creating it if missing.
func EnsureStateDir() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}
	return dir, nil
}

// Load loads configuration from a YAML file, applying .env and environment
// overrides on top. A missing file yields defaults, not an error.
func Load(path string) (*Config, error) {
	// Best effort; local development convenience only.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// LoadDefault loads the config from the standard state directory.
func LoadDefault() (*Config, error) {
	dir, err := StateDir()
	if err != nil {
		return nil, err
	}
	return Load(filepath.Join(dir, "config.yaml"))
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("FINTRACK_API_BASE_URL"); url != "" {
		c.API.BaseURL = url
	}
	if timeout := os.Getenv("FINTRACK_API_TIMEOUT"); timeout != "" {
		c.API.Timeout = timeout
	}
	if theme := os.Getenv("FINTRACK_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if os.Getenv("FINTRACK_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
}

// GetAPITimeout returns the API timeout as a duration. Zero means the HTTP
// client waits indefinitely, which is the faithful default.
func (c *Config) GetAPITimeout() time.Duration {
	if c.API.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0
	}
	return d
}
