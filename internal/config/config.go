package config

import (
	"time"
)

// Config is the CLI configuration. The SDK itself takes everything at
// construction time; this struct only feeds the command layer.
type Config struct {
	// APIKey is the Discourses API key (DISCOURSES_API_KEY).
	APIKey string `mapstructure:"api_key"`

	// BaseURL overrides the production API base URL. Point it at a
	// `discourses serve` instance for offline work.
	BaseURL string `mapstructure:"base_url"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `mapstructure:"timeout"`

	Logging LoggingConfig `mapstructure:"logging"`
	Mock    MockConfig    `mapstructure:"mock"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level.
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`
}

// MockConfig configures the local mock server started by `discourses serve`.
type MockConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// APIKey is the bearer token the mock server accepts. Empty accepts
	// any non-empty token.
	APIKey string `mapstructure:"api_key"`

	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}
