package metrics

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env maps environment variable names for metrics configuration.
type Env struct {
	Enabled string
	Path    string
}

type Config struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies overlay values. An overlay can enable metrics but not
// disable them; use the environment override for that.
func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
}

func (c *Config) loadDefaults() {
	if c.Path == "" {
		c.Path = "/metrics"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if enabled, err := strconv.ParseBool(v); err == nil {
				c.Enabled = enabled
			}
		}
	}
	if env.Path != "" {
		if v := os.Getenv(env.Path); v != "" {
			c.Path = v
		}
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path must start with /: %s", c.Path)
	}
	return nil
}
