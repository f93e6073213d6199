// Package config loads the service's environment-driven configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the service's runtime configuration.
type Config struct {
	BindAddr     string
	DataDir      string
	LogLevel     string
	LogFormat    string
	WebUIEnabled bool
}

// Load reads configuration from an optional .env file followed by
// environment variables: BIND_ADDR, DATA_DIR (required), LOG_LEVEL,
// LOG_FORMAT, WEB_UI_ENABLED.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A missing .env is fine; any other read error is ignored here
			// and surfaces later as missing/invalid individual keys.
		}
	}

	v.SetDefault("BIND_ADDR", "127.0.0.1:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("WEB_UI_ENABLED", false)
	v.AutomaticEnv()

	dataDir := v.GetString("DATA_DIR")
	if dataDir == "" {
		return nil, fmt.Errorf("DATA_DIR environment variable is required")
	}

	return &Config{
		BindAddr:     v.GetString("BIND_ADDR"),
		DataDir:      dataDir,
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		WebUIEnabled: v.GetBool("WEB_UI_ENABLED"),
	}, nil
}

// Validate ensures DataDir exists and is writable, creating it if
// necessary.
func (c *Config) Validate() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory %q: %w", c.DataDir, err)
	}

	probe := filepath.Join(c.DataDir, ".write_test")
	if err := os.WriteFile(probe, []byte("test"), 0o644); err != nil {
		return fmt.Errorf("data directory %q is not writable: %w", c.DataDir, err)
	}
	if err := os.Remove(probe); err != nil {
		return fmt.Errorf("clean up write test file: %w", err)
	}

	return nil
}
