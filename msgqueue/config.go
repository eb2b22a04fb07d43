// File: msgqueue/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// YAML configuration for message queues.

package msgqueue

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-ring/api"
)

// Defaults applied when a field is absent.
const (
	DefaultName     = "messages"
	DefaultCapacity = 256
	DefaultMode     = api.ModeBasic
	DefaultLogLevel = "info"
)

// Config keys understood by Queue.Watch.
const (
	KeyLogLevel = "log_level"
	KeyCapacity = "capacity"
)

// Config describes a single queue.
type Config struct {
	Name     string   `yaml:"name"`
	Capacity int      `yaml:"capacity"`
	Mode     api.Mode `yaml:"mode"`
	LogLevel string   `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Name:     DefaultName,
		Capacity: DefaultCapacity,
		Mode:     DefaultMode,
		LogLevel: DefaultLogLevel,
	}
}

// LoadConfigFile loads a queue config from a YAML file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading queue config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML bytes over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing queue config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating queue config: %w", err)
	}
	return cfg, nil
}

// Validate checks config integrity.
func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", api.ErrInvalidArgument)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("%w: got %d", api.ErrInvalidCapacity, c.Capacity)
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", api.ErrInvalidArgument, c.Mode)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, or info if unparseable.
func (c Config) Level() zerolog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// AsMap renders the config as a ConfigStore seed.
func (c Config) AsMap() map[string]any {
	return map[string]any{
		"name":      c.Name,
		KeyCapacity: c.Capacity,
		"mode":      string(c.Mode),
		KeyLogLevel: c.LogLevel,
	}
}

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log level %q", api.ErrInvalidArgument, s)
	}
	return lvl, nil
}
