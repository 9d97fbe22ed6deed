package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt cost bounds. Below 10 is too cheap to brute-force-protect account
// passwords; above 14 login latency becomes unacceptable.
const (
	minBcryptCost = 10
	maxBcryptCost = 14
)

// PasswordConfig hashes and verifies account passwords with bcrypt. An
// optional pepper is appended before hashing so leaked hashes cannot be
// cracked without the server-side secret.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string
}

// NewPasswordConfig reads BCRYPT_COST (default 12) and PASSWORD_PEPPER
// (optional) from the environment.
func NewPasswordConfig() (*PasswordConfig, error) {
	cfg := &PasswordConfig{
		BcryptCost: 12,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}

	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		parsed, err := strconv.Atoi(cost)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
		cfg.BcryptCost = parsed
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < minBcryptCost || c.BcryptCost > maxBcryptCost {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", c.BcryptCost, minBcryptCost, maxBcryptCost)
	}
	return nil
}

func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword returns the bcrypt hash of a (peppered) password.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether a password matches a stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}
