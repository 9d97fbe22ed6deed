package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultIssuer is stamped into tokens and checked on validation.
const DefaultIssuer = "resume-studio"

// minSecretLength guards against trivially brute-forceable HS256 keys.
const minSecretLength = 32

// JWTConfig holds signing settings for API tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
	Issuer          string
}

// NewJWTConfig reads JWT_SECRET (required, at least 32 bytes),
// JWT_EXPIRATION_HOURS (default 24), and JWT_ISSUER (default
// "resume-studio") from the environment.
func NewJWTConfig() (*JWTConfig, error) {
	cfg := &JWTConfig{
		Secret:          os.Getenv("JWT_SECRET"),
		ExpirationHours: 24,
		Issuer:          DefaultIssuer,
	}

	if hours := os.Getenv("JWT_EXPIRATION_HOURS"); hours != "" {
		parsed, err := strconv.Atoi(hours)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		cfg.ExpirationHours = parsed
	}

	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		cfg.Issuer = issuer
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required but not set")
	}
	if len(c.Secret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes, got: %d", minSecretLength, len(c.Secret))
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
