// Package config loads the wizard's runtime settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the deployment settings of the wizard binary.
type Config struct {
	// Endpoint is the full submission URL.
	Endpoint string `yaml:"endpoint"`
	// TimeoutSeconds bounds the network call. Zero keeps the historical
	// behaviour of no timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Endpoint: "http://localhost:8080/webhook",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Endpoint == "" {
		return Config{}, fmt.Errorf("config: endpoint is required in %s", path)
	}
	if cfg.TimeoutSeconds < 0 {
		return Config{}, fmt.Errorf("config: timeout_seconds must not be negative")
	}
	return cfg, nil
}

// Timeout converts the configured seconds into a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
