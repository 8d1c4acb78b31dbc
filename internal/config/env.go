package config

import (
	"os"
	"strings"
)

// Environment represents the application environment
type Environment string

const (
	// Development environment - localhost, debug enabled
	Development Environment = "development"
	// Production environment - real deployment settings
	Production Environment = "production"
)

// EnvConfig holds environment-specific configuration
type EnvConfig struct {
	// Environment name (development, production)
	Env Environment

	// Feature flags
	Debug bool

	// Environment-specific values
	LogLevel string

	// Overrides for config.json values (empty = keep file/default)
	Listen        string
	MetricsListen string
	StorePath     string
	UsersFile     string
}

// LoadEnv loads environment configuration from environment variables
func LoadEnv() *EnvConfig {
	env := getEnvOrDefault("APP_ENV", "development")

	cfg := &EnvConfig{
		Env:      Environment(strings.ToLower(env)),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	switch cfg.Env {
	case Production:
		cfg.Debug = getEnvOrDefault("DEBUG", "false") == "true"
	default:
		// Normalize unknown envs to development
		cfg.Env = Development
		cfg.Debug = getEnvOrDefault("DEBUG", "true") == "true"
		if cfg.LogLevel == "info" {
			cfg.LogLevel = "debug" // Dev default
		}
	}

	cfg.Listen = os.Getenv("INKWHEEL_LISTEN")
	cfg.MetricsListen = os.Getenv("INKWHEEL_METRICS_LISTEN")
	cfg.StorePath = os.Getenv("INKWHEEL_STORE")
	cfg.UsersFile = os.Getenv("INKWHEEL_USERS_FILE")

	return cfg
}

// IsDevelopment returns true if running in development mode
func (e *EnvConfig) IsDevelopment() bool {
	return e.Env == Development
}

// IsProduction returns true if running in production mode
func (e *EnvConfig) IsProduction() bool {
	return e.Env == Production
}

// String returns the environment name
func (e Environment) String() string {
	return string(e)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
