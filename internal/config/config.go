// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration
type Config struct {
	// HTTPAddr is the listen address for the API server
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// RedisAddr is the address of the Redis instance backing persistence
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword authenticates against Redis; empty means no auth
	RedisPassword string `env:"REDIS_PASSWORD"`

	// TableID namespaces the persisted state
	TableID string `env:"TABLE_ID" envDefault:"default"`

	// Locale selects the language for user-facing notices
	Locale string `env:"LOCALE" envDefault:"es"`
}

// Load parses the configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
