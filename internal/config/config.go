// Package config provides configuration loading and validation for the
// service and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration, loaded from environment
// variables. DatabaseURL is required for the server; GeminiAPIKey is
// optional, and generation falls back to rule-based output without it.
type Config struct {
	DatabaseURL  string
	Port         int
	GeminiAPIKey string
	AllowOrigin  string
}

// Load reads the application configuration from the environment.
// It reads DATABASE_URL (required), PORT (default: 8080), GEMINI_API_KEY,
// and CORS_ALLOW_ORIGIN (default: "*").
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	allowOrigin := os.Getenv("CORS_ALLOW_ORIGIN")
	if allowOrigin == "" {
		allowOrigin = "*"
	}

	cfg := &Config{
		DatabaseURL:  databaseURL,
		Port:         port,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		AllowOrigin:  allowOrigin,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got: %d", c.Port)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
