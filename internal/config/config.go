// Package config holds CLI configuration. Values come from environment
// variables with sensible defaults, optionally overridden by a YAML config
// file; command-line flags override both.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all punkt CLI configuration.
type Config struct {
	// ParamsPath is the JSON parameter bundle to load.
	ParamsPath string `yaml:"params"`
	// Format selects the output encoding: "text", "json", or "ndjson".
	Format string `yaml:"format"`
	// Spans emits byte-offset spans instead of sentence text.
	Spans bool `yaml:"spans"`
	// NoRealign disables boundary realignment.
	NoRealign bool `yaml:"no_realign"`
	// SentEndChars overrides the sentence-end character set.
	SentEndChars string `yaml:"sent_end_chars"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// Load reads configuration from environment variables, then overlays the
// YAML file at path when path is non-empty.
func Load(path string) (Config, error) {
	cfg := Config{
		ParamsPath: os.Getenv("PUNKT_PARAMS"),
		Format:     getenv("PUNKT_FORMAT", "text"),
		LogLevel:   getenv("PUNKT_LOG_LEVEL", "info"),
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cross-field constraints not enforced by parsing.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json", "ndjson":
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.ParamsPath == "" {
		return fmt.Errorf("config: no parameter bundle configured")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
