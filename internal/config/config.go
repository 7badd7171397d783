// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host      string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port      string `env:"SERVER_PORT" envDefault:"8080"`
	StaticDir string `env:"STATIC_DIR" envDefault:"./static"`
}

// Load reads configuration from the environment, loading a .env file first
// when one is present. Every setting has a default, so Load succeeds on an
// empty environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}

// Addr returns the host:port string the HTTP server binds to.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
