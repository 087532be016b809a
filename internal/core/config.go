package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds global configuration for ledgerview.
type Config struct {
	Server ServerConfig `json:"server"`
	Docs   DocsConfig   `json:"docs"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// DocsConfig holds document store settings.
type DocsConfig struct {
	// Dir overrides the documentation directory. Empty means
	// <data-dir>/docs.
	Dir string `json:"dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
	}
}

// LoadConfig loads configuration from config.json in the data directory.
// Falls back to default configuration if config.json doesn't exist.
// Environment variables override both file and default values.
func LoadConfig(dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config.json
	configPath := filepath.Join(dataDir, "config.json")
	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config.json: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config.json: %w", err)
	}
	// If file doesn't exist, we continue with defaults

	// Apply environment variable overrides
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) error {
	if val, ok := os.LookupEnv("LEDGERVIEW_HOST"); ok {
		cfg.Server.Host = val
	}

	if val, ok := os.LookupEnv("LEDGERVIEW_PORT"); ok {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid LEDGERVIEW_PORT: %w", err)
		}
		cfg.Server.Port = parsed
	}

	if val, ok := os.LookupEnv("LEDGERVIEW_DOCS_DIR"); ok {
		cfg.Docs.Dir = val
	}

	return nil
}

// Addr returns the host:port address for the HTTP listener.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
