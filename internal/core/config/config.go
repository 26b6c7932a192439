// Package config carries the engine-level settings shared by the demo
// binary and the injector: log level, random seed, scene file path.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/keelengine/keel/internal/core/observability/log"
)

// Config is the root engine configuration. Zero values mean "default":
// empty log level is info, zero seed keeps the time-seeded random source,
// empty scene path makes the demo build its fallback scene in code.
type Config struct {
	LogLevel  string `json:"log_level" yaml:"log_level"`
	RandSeed  int64  `json:"rand_seed,omitempty" yaml:"rand_seed,omitempty"`
	ScenePath string `json:"scene_path,omitempty" yaml:"scene_path,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load decodes a config from YAML on top of the defaults.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a config from disk.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Validate checks field domains.
func (c *Config) Validate() error {
	if !log.KnownLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.RandSeed < 0 {
		return fmt.Errorf("rand_seed must not be negative, got %d", c.RandSeed)
	}
	return nil
}

// Level is the parsed form of LogLevel.
func (c *Config) Level() log.Level {
	return log.ParseLevel(c.LogLevel)
}
