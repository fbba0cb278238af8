// Package config loads application settings from the environment, with an
// optional YAML file for local overrides.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultTokenTTL is how long an issued session token stays valid.
	DefaultTokenTTL = 7 * 24 * time.Hour

	// DefaultBcryptCost is the work factor used when hashing passwords.
	DefaultBcryptCost = 12

	devSecret = "dev-secret"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port        string `yaml:"port"`
	Env         string `yaml:"env"` // "development" or "production"
	DatabaseURL string `yaml:"database_url"`
	JWTSecret   string `yaml:"jwt_secret"`

	TokenTTL   time.Duration `yaml:"token_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost"`

	// Comma-separated in the environment, a list in YAML.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// Load builds a Config from an optional YAML file (CONFIG_FILE) and the
// environment. Environment variables win over file values.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       "5050",
		Env:        "development",
		TokenTTL:   DefaultTokenTTL,
		BcryptCost: DefaultBcryptCost,
		JWTSecret:  devSecret,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.New("TOKEN_TTL is not a valid duration: " + v)
		}
		cfg.TokenTTL = ttl
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("BCRYPT_COST is not a valid integer: " + v)
		}
		cfg.BcryptCost = cost
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == devSecret) {
		return errors.New("JWT_SECRET must be set in production")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode. It controls
// the Secure flag on session cookies.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
