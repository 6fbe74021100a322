// Package config provides configuration management for the lng client.
// Configuration is loaded from multiple sources with the following
// precedence: embedded defaults → global file → env vars.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

// Config holds all settings for the lng client. Fields ending in *Set
// track whether that field was explicitly set in a config file, so a file
// can override defaults with zero values.
type Config struct {
	// BaseURL of the lesson-notes generation service.
	BaseURL string `yaml:"base_url"`

	// RequestTimeout for the generation call, in seconds. 0 means no
	// timeout; the call runs until the service responds.
	RequestTimeout int `yaml:"request_timeout"`

	// RevealIntervalMS is the delay between progressive field reveals.
	RevealIntervalMS int `yaml:"reveal_interval_ms"`

	// Set tracking for merge behavior
	RequestTimeoutSet   bool `yaml:"-"`
	RevealIntervalMSSet bool `yaml:"-"`

	configDir string
	sources   []string // ordered list of sources that contributed to this config
}

// Sources returns where this config's values came from, in order.
func (c *Config) Sources() []string {
	return c.sources
}

// ConfigDir returns the global config directory.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// RequestTimeoutDuration returns the request timeout as a duration.
// Zero means no timeout.
func (c *Config) RequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// RevealInterval returns the field-reveal tick interval.
func (c *Config) RevealInterval() time.Duration {
	return time.Duration(c.RevealIntervalMS) * time.Millisecond
}

// Validate checks that the resolved configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	if c.RevealIntervalMS <= 0 {
		return fmt.Errorf("reveal_interval_ms must be positive")
	}
	return nil
}

// Load loads configuration from the default global directory.
func Load() (*Config, error) {
	return LoadWithDir(DefaultConfigDir())
}

// LoadWithDir loads configuration with an explicit global directory.
// It installs defaults there if needed.
func LoadWithDir(globalDir string) (*Config, error) {
	if err := InstallDefaults(globalDir); err != nil {
		return nil, fmt.Errorf("install defaults: %w", err)
	}

	// 1. Start with embedded defaults
	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}
	cfg.sources = append(cfg.sources, "embedded")

	// 2. Merge global config
	globalPath := filepath.Join(globalDir, "config.yaml")
	if globalCfg, err := loadFile(globalPath); err == nil {
		cfg.mergeFrom(globalCfg)
		cfg.sources = append(cfg.sources, globalPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("load global config: %w", err)
	}

	// 3. Apply environment variables (highest precedence)
	cfg.applyEnv()

	cfg.configDir = globalDir
	return cfg, nil
}

// DefaultConfigDir returns the default global configuration directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "lng")
	}
	return filepath.Join(home, ".config", "lng")
}

// InstallDefaults creates the config directory and installs the default
// config file if it does not exist yet.
func InstallDefaults(configDir string) error {
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		data, err := defaultsFS.ReadFile("defaults/config.yaml")
		if err != nil {
			return fmt.Errorf("read embedded config: %w", err)
		}
		if err := os.WriteFile(configPath, data, 0o600); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	}

	return nil
}

func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return parseConfig(data)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's config file
	if err != nil {
		return nil, err
	}
	return parseConfigWithTracking(data)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// parseConfigWithTracking parses YAML config and tracks which fields were set.
func parseConfigWithTracking(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if _, ok := raw["request_timeout"]; ok {
		cfg.RequestTimeoutSet = true
	}
	if _, ok := raw["reveal_interval_ms"]; ok {
		cfg.RevealIntervalMSSet = true
	}

	return cfg, nil
}

// applyEnv applies environment variables to the config.
func (c *Config) applyEnv() {
	if v := os.Getenv("LNG_BASE_URL"); v != "" {
		c.BaseURL = v
		c.sources = append(c.sources, "env:LNG_BASE_URL")
	}

	if v := os.Getenv("LNG_REQUEST_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RequestTimeout = n
			c.RequestTimeoutSet = true
			c.sources = append(c.sources, "env:LNG_REQUEST_TIMEOUT")
		}
	}

	if v := os.Getenv("LNG_REVEAL_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RevealIntervalMS = n
			c.RevealIntervalMSSet = true
			c.sources = append(c.sources, "env:LNG_REVEAL_INTERVAL_MS")
		}
	}
}

// mergeFrom merges non-empty/set values from src into c.
func (c *Config) mergeFrom(src *Config) {
	if src.BaseURL != "" {
		c.BaseURL = src.BaseURL
	}
	if src.RequestTimeoutSet {
		c.RequestTimeout = src.RequestTimeout
		c.RequestTimeoutSet = true
	}
	if src.RevealIntervalMSSet {
		c.RevealIntervalMS = src.RevealIntervalMS
		c.RevealIntervalMSSet = true
	}
}
