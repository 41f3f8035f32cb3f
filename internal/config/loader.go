// Package config provides configuration for the discourses CLI, layered as
// defaults, then an optional YAML config file, then environment variables
// (DISCOURSES_ prefix, with .env support).
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// SetDefaults registers default configuration values with viper.
func SetDefaults() {
	viper.SetDefault("base_url", "https://discourses.io/api/v1")
	viper.SetDefault("timeout", "30s")

	viper.SetDefault("logging.level", "info")

	viper.SetDefault("mock.host", "localhost")
	viper.SetDefault("mock.port", 8080)
	viper.SetDefault("mock.api_key", "")
	viper.SetDefault("mock.shutdown_timeout", "10s")
}

// Load decodes the current viper state into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := viper.Unmarshal(cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}
	if cfg.Mock.Port < 0 || cfg.Mock.Port > 65535 {
		return fmt.Errorf("mock.port must be in [0, 65535], got %d", cfg.Mock.Port)
	}
	switch cfg.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported logging.level: %s", cfg.Logging.Level)
	}
	return nil
}
