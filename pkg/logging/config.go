package logging

import (
	"fmt"
	"os"
	"strings"
)

// Env names the variables that override the [logging] section.
type Env struct {
	Level  string
	Format string
}

// DefaultEnv is the variable set the service reads: LOGGING_LEVEL and LOGGING_FORMAT.
var DefaultEnv = Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
}

// Config is the [logging] section. Values are case-insensitive, so
// LOGGING_LEVEL=DEBUG and level = "debug" select the same handler level.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize fills in info/text, applies env, and rejects unknown values.
// A nil env skips the environment entirely.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.fromEnv(env)
	}
	c.normalize()

	if err := c.Level.Validate(); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if err := c.Format.Validate(); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}

// Merge takes every field the overlay sets.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

func (c *Config) fromEnv(env *Env) {
	if v, ok := lookup(env.Level); ok {
		c.Level = Level(v)
	}
	if v, ok := lookup(env.Format); ok {
		c.Format = Format(v)
	}
}

func (c *Config) normalize() {
	c.Level = Level(strings.ToLower(strings.TrimSpace(string(c.Level))))
	c.Format = Format(strings.ToLower(strings.TrimSpace(string(c.Format))))

	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
}

func lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	v := os.Getenv(name)
	return v, v != ""
}
