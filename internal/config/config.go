// Package config holds the server configuration, loaded from an
// optional YAML file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration.
type Config struct {
	ListenAddr  string `yaml:"listen_addr"`
	MetricsAddr string `yaml:"metrics_addr"`

	// AllowedOrigins feeds the CORS layer; "*" allows any origin.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// DefaultTrials is used when a request omits num_simulations;
	// MaxTrials is the caller-supplied upper bound on one run.
	DefaultTrials int `yaml:"default_trials"`
	MaxTrials     int `yaml:"max_trials"`

	// Workers for the engine's trial scatter; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		ListenAddr:      ":8080",
		MetricsAddr:     ":9090",
		AllowedOrigins:  []string{"*"},
		DefaultTrials:   100_000,
		MaxTrials:       1_000_000,
		Workers:         0,
		ShutdownTimeout: 30 * time.Second,
	}
}

// LoadFile reads a YAML config over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("VSL_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("VSL_METRICS_ADDR"); v != "" {
		c.MetricsAddr = v
	}
	if v := os.Getenv("VSL_MAX_TRIALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTrials = n
		}
	}
	if v := os.Getenv("VSL_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
}

// Validate checks the trial-count bounds.
func (c Config) Validate() error {
	if c.DefaultTrials <= 0 {
		return fmt.Errorf("default_trials must be positive, got %d", c.DefaultTrials)
	}
	if c.MaxTrials < c.DefaultTrials {
		return fmt.Errorf("max_trials (%d) must be at least default_trials (%d)", c.MaxTrials, c.DefaultTrials)
	}
	return nil
}
