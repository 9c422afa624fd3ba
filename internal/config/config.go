// Package config loads the optional YAML file that overrides demonstration
// parameters and logging. The zero-argument run needs no file at all.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Pure-Company/fundamentals"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable the fundamentals command accepts.
type Config struct {
	// Path the file demonstration tries to read
	MissingFile string `yaml:"missing_file"`

	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ConcurrencyConfig configures the spawned-worker demonstration.
type ConcurrencyConfig struct {
	Iterations   int    `yaml:"iterations"`
	SpawnedDelay string `yaml:"spawned_delay"` // e.g. "1ms"
	MainDelay    string `yaml:"main_delay"`
}

// LoggingConfig configures the diagnostic logger on stderr.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // console, json
}

// Default returns the literal parameters every demonstration uses.
func Default() *Config {
	return &Config{
		MissingFile: fundamentals.DefaultMissingFile,
		Concurrency: ConcurrencyConfig{
			Iterations:   5,
			SpawnedDelay: "1ms",
			MainDelay:    "2ms",
		},
		Logging: LoggingConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.MissingFile == "" {
		return errors.New("missing_file must not be empty")
	}
	if c.Concurrency.Iterations <= 0 {
		return fmt.Errorf("concurrency.iterations must be positive, got %d", c.Concurrency.Iterations)
	}
	if _, err := parseDelay("concurrency.spawned_delay", c.Concurrency.SpawnedDelay); err != nil {
		return err
	}
	if _, err := parseDelay("concurrency.main_delay", c.Concurrency.MainDelay); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("logging.encoding must be console or json, got %q", c.Logging.Encoding)
	}
	return nil
}

// Settings converts the config into demonstration settings rooted at the
// working directory.
func (c *Config) Settings() (fundamentals.Settings, error) {
	if err := c.Validate(); err != nil {
		return fundamentals.Settings{}, err
	}
	spawned, err := parseDelay("concurrency.spawned_delay", c.Concurrency.SpawnedDelay)
	if err != nil {
		return fundamentals.Settings{}, err
	}
	mainDelay, err := parseDelay("concurrency.main_delay", c.Concurrency.MainDelay)
	if err != nil {
		return fundamentals.Settings{}, err
	}

	s := fundamentals.DefaultSettings()
	s.MissingFile = c.MissingFile
	s.Concurrency.Iterations = c.Concurrency.Iterations
	s.Concurrency.SpawnedDelay = spawned
	s.Concurrency.MainDelay = mainDelay
	return s, nil
}

func parseDelay(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %s", field, value)
	}
	return d, nil
}
