package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"null-hydrator/hydrate"
)

// LoadFile loads and parses a YAML settings file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	if cfg.Policy == nil {
		cfg.Policy = &Policy{}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if c.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported version %q", c.Version))
	}

	for _, name := range c.Skip {
		// the type part may itself contain dots, as in generic instantiations
		first, last := strings.Index(name, "."), strings.LastIndex(name, ".")
		if first <= 0 || last <= first+1 || last == len(name)-1 {
			errs = append(errs, fmt.Errorf("skip entry %q is not of the form pkg.Type.Field", name))
		}
	}

	if _, err := c.Clock(); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Clock returns the clock selected by fixed_time, or nil for the system clock.
func (c *Config) Clock() (hydrate.Clock, error) {
	if c.FixedTime == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, c.FixedTime)
	if err != nil {
		return nil, fmt.Errorf("invalid fixed_time %q: %w", c.FixedTime, err)
	}

	return hydrate.FixedClock(t), nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// Options validates the configuration and converts it into hydrate options.
// The logger is not part of them; see Logger.
func (c *Config) Options() ([]hydrate.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	opts := []hydrate.Option{hydrate.WithPolicy(c.Policy.Enum())}

	if len(c.Skip) > 0 {
		opts = append(opts, hydrate.WithSkip(c.Skip...))
	}

	clock, _ := c.Clock()
	if clock != nil {
		opts = append(opts, hydrate.WithClock(clock))
	}

	return opts, nil
}
