package cmd

import (
	"errors"
	"fmt"

	"github.com/discourses/discourses-go"
	"github.com/discourses/discourses-go/internal/config"
	"github.com/discourses/discourses-go/internal/output"
)

// buildClient loads config and constructs an SDK client from it.
func buildClient() (*discourses.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, errors.New("api key is required (set --api-key or DISCOURSES_API_KEY)")
	}

	opts := []discourses.Option{}
	if cfg.BaseURL != "" {
		opts = append(opts, discourses.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, discourses.WithTimeout(cfg.Timeout))
	}

	return discourses.New(cfg.APIKey, opts...)
}

// resolveFormatter validates the --output-format flag.
func resolveFormatter() (output.Formatter, error) {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return nil, err
	}
	return output.NewFormatter(format), nil
}

// parseEraFlag turns an optional --era flag value into a validated Era.
func parseEraFlag(value string) (discourses.Era, error) {
	if value == "" {
		return "", nil
	}
	era, err := discourses.ParseEra(value)
	if err != nil {
		return "", fmt.Errorf("--era: %w", err)
	}
	return era, nil
}
