// Package config loads CLI defaults from a YAML file and KINGDOM_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/kingdom/internal/kingdom"
	"github.com/appengine-ltd/kingdom/internal/logging"
)

// DefaultFile is read from the working directory when no file is given.
const DefaultFile = "kingdom.yaml"

type Config struct {
	Catalog       string   `yaml:"catalog" env:"KINGDOM_CATALOG"`
	Sets          []string `yaml:"sets" env:"KINGDOM_SETS" envSeparator:","`
	MaxOther      int      `yaml:"max_other" env:"KINGDOM_MAX_OTHER"`
	MaxIterations int      `yaml:"max_iterations" env:"KINGDOM_MAX_ITERATIONS"`
	LogLevel      string   `yaml:"log_level" env:"KINGDOM_LOG_LEVEL"`
	LogFormat     string   `yaml:"log_format" env:"KINGDOM_LOG_FORMAT"`
}

func Default() Config {
	return Config{
		Catalog:       "cards.json",
		MaxOther:      kingdom.DefaultMaxOther,
		MaxIterations: kingdom.DefaultMaxIterations,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load applies, in order, the defaults, the YAML file and the environment.
// An empty path reads DefaultFile if it exists. The result is not validated;
// callers apply their flag overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	if c.Catalog == "" {
		return fmt.Errorf("catalog path is required")
	}
	if c.MaxOther < 0 {
		return fmt.Errorf("max_other must be non-negative, got %d", c.MaxOther)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must be non-negative, got %d", c.MaxIterations)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}
	return nil
}
