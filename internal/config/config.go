package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all server configuration values.
type Config struct {
	Listen        string `json:"listen"`
	MetricsListen string `json:"metrics_listen"`
	StorePath     string `json:"store_path"`
	UsersFile     string `json:"users_file"`
	TimeoutSec    int    `json:"timeout_sec"`
	AllowedOrigin string `json:"allowed_origin"`

	// Environment configuration (loaded from env vars)
	Env *EnvConfig `json:"-"`
}

// Load reads configuration from config.json with sensible defaults,
// then applies environment overrides.
func Load() *Config {
	cfg := &Config{
		Listen:        ":8077",
		MetricsListen: ":9090",
		StorePath:     defaultStorePath(),
		TimeoutSec:    30,
		AllowedOrigin: "*",
		Env:           LoadEnv(),
	}

	if file, err := os.Open("config.json"); err == nil {
		defer file.Close()
		json.NewDecoder(file).Decode(cfg)
	}

	// Env vars win over the file so deployments can override without
	// editing config.json.
	if v := cfg.Env.Listen; v != "" {
		cfg.Listen = v
	}
	if v := cfg.Env.MetricsListen; v != "" {
		cfg.MetricsListen = v
	}
	if v := cfg.Env.StorePath; v != "" {
		cfg.StorePath = v
	}
	if v := cfg.Env.UsersFile; v != "" {
		cfg.UsersFile = v
	}

	return cfg
}

// Validate checks the configuration for errors and returns helpful
// messages, all at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Listen == "" {
		errs = append(errs, "listen address is required")
	}
	if c.StorePath == "" {
		errs = append(errs, "store_path is required")
	}
	if c.TimeoutSec <= 0 {
		errs = append(errs, "timeout_sec must be positive")
	}
	if c.UsersFile != "" {
		if _, err := os.Stat(c.UsersFile); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("users file not found: %s", c.UsersFile))
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

// defaultStorePath puts the palette database under the user's home
// directory, falling back to the working directory when home is
// unknown.
func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "inkwheel.db"
	}
	return filepath.Join(home, ".inkwheel", "palettes.db")
}
