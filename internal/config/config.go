// Package config loads verdant configuration from YAML with environment
// overrides. Missing files fall back to defaults; a missing API key is
// the one fatal condition, reported by Validate.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"verdant/internal/types"
)

// Config holds all verdant configuration.
type Config struct {
	// Language for AI output: "en" or "bn".
	Language string `yaml:"language"`

	// Gateway configures the Gemini boundary.
	Gateway GatewayConfig `yaml:"gateway"`

	// Store configures local persistence.
	Store StoreConfig `yaml:"store"`

	// Watch configures the drop-folder watcher.
	Watch WatchConfig `yaml:"watch"`
}

// GatewayConfig configures the AI gateway.
type GatewayConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

// StoreConfig configures the history store.
type StoreConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// WatchConfig configures the drop-folder watcher.
type WatchConfig struct {
	// Workers bounds concurrent identifications while watching.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Language: string(types.LanguageEnglish),
		Gateway: GatewayConfig{
			Model:   "gemini-2.5-flash",
			Timeout: "120s",
		},
		Store: StoreConfig{
			DatabasePath: filepath.Join(dataDir(), "verdant.db"),
		},
		Watch: WatchConfig{
			Workers: 2,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(dataDir(), "config.yaml")
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".verdant"
	}
	return filepath.Join(home, ".verdant")
}

// Load reads configuration from a YAML file, applying defaults for a
// missing file and environment overrides on top.
func Load(path string) (*Config, error) {
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

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Gateway.APIKey = key
	}
	if model := os.Getenv("VERDANT_MODEL"); model != "" {
		c.Gateway.Model = model
	}
	if path := os.Getenv("VERDANT_DB"); path != "" {
		c.Store.DatabasePath = path
	}
	if lang := os.Getenv("VERDANT_LANG"); lang != "" {
		c.Language = lang
	}
}

// GatewayTimeout returns the gateway timeout as a duration.
func (c *Config) GatewayTimeout() time.Duration {
	d, err := time.ParseDuration(c.Gateway.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// LanguageCode returns the configured language, defaulting to English
// for unknown values.
func (c *Config) LanguageCode() types.Language {
	if types.Language(c.Language) == types.LanguageBengali {
		return types.LanguageBengali
	}
	return types.LanguageEnglish
}

// Validate checks that the configuration can drive a gateway call.
func (c *Config) Validate() error {
	if c.Gateway.APIKey == "" {
		return fmt.Errorf("Gemini API key not configured (set GEMINI_API_KEY or gateway.api_key)")
	}
	if c.Watch.Workers < 1 {
		return fmt.Errorf("watch.workers must be at least 1, got %d", c.Watch.Workers)
	}
	return nil
}
