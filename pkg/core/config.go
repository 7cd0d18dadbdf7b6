// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeout is the hard ceiling for one external invocation
const DefaultTimeout = 300 * time.Second

// Config holds orange configuration
type Config struct {
	DefaultBackend string        `yaml:"default_backend"`
	Timeout        time.Duration `yaml:"timeout"`
	Elevation      string        `yaml:"elevation"` // auto, pkexec, sudo, none
	Disabled       []string      `yaml:"disabled"`  // backends never detected
	Aliases        string        `yaml:"aliases"`   // path to aliases.toml
	Debug          bool          `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultBackend: os.Getenv("ORANGE_BACKEND"), // Empty means first detected
		Timeout:        DefaultTimeout,
		Elevation:      "auto",
		Aliases:        defaultAliasesPath(),
	}
}

// DefaultConfigPath returns $HOME/.config/orange/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "orange", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Unmarshal over defaults so omitted keys keep their default value
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if env := os.Getenv("ORANGE_BACKEND"); env != "" {
		cfg.DefaultBackend = env
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func defaultAliasesPath() string {
	if path := os.Getenv("ORANGE_ALIASES"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "orange", "aliases.toml")
}
