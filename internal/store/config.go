package store

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/shows-api/pkg/database"
)

// Env maps environment variable names for store configuration.
type Env struct {
	Driver   string
	Seed     string
	Database *database.Env
	Redis    *RedisEnv
}

// Config selects and configures the show store backend.
// Only the section of the selected driver is finalized.
type Config struct {
	Driver   string          `toml:"driver"`
	Seed     *bool           `toml:"seed"`
	Database database.Config `toml:"database"`
	Redis    RedisConfig     `toml:"redis"`
}

// ShouldSeed reports whether an empty memory store is seeded on open.
func (c *Config) ShouldSeed() bool {
	return c.Seed == nil || *c.Seed
}

// Finalize applies defaults, loads environment overrides, and validates the store configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	if err := c.validate(); err != nil {
		return err
	}

	switch c.Driver {
	case DriverPostgres:
		var dbEnv *database.Env
		if env != nil {
			dbEnv = env.Database
		}
		if err := c.Database.Finalize(dbEnv); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	case DriverRedis:
		var redisEnv *RedisEnv
		if env != nil {
			redisEnv = env.Redis
		}
		if err := c.Redis.Finalize(redisEnv); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Driver != "" {
		c.Driver = overlay.Driver
	}
	if overlay.Seed != nil {
		c.Seed = overlay.Seed
	}
	c.Database.Merge(&overlay.Database)
	c.Redis.Merge(&overlay.Redis)
}

func (c *Config) loadDefaults() {
	if c.Driver == "" {
		c.Driver = DriverMemory
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Driver != "" {
		if v := os.Getenv(env.Driver); v != "" {
			c.Driver = v
		}
	}
	if env.Seed != "" {
		if v := os.Getenv(env.Seed); v != "" {
			if seed, err := strconv.ParseBool(v); err == nil {
				c.Seed = &seed
			}
		}
	}
}

func (c *Config) validate() error {
	if !Registered(c.Driver) {
		return fmt.Errorf("unknown driver %q (registered: %v)", c.Driver, Drivers())
	}
	return nil
}

// RedisEnv maps environment variable names for redis configuration.
type RedisEnv struct {
	Address  string
	Password string
	DB       string
	Prefix   string
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

func (c *RedisConfig) Finalize(env *RedisEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

func (c *RedisConfig) Merge(overlay *RedisConfig) {
	if overlay.Address != "" {
		c.Address = overlay.Address
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
	if overlay.DB != 0 {
		c.DB = overlay.DB
	}
	if overlay.Prefix != "" {
		c.Prefix = overlay.Prefix
	}
}

func (c *RedisConfig) loadDefaults() {
	if c.Address == "" {
		c.Address = "localhost:6379"
	}
	if c.Prefix == "" {
		c.Prefix = "shows"
	}
}

func (c *RedisConfig) loadEnv(env *RedisEnv) {
	if env.Address != "" {
		if v := os.Getenv(env.Address); v != "" {
			c.Address = v
		}
	}
	if env.Password != "" {
		if v := os.Getenv(env.Password); v != "" {
			c.Password = v
		}
	}
	if env.DB != "" {
		if v := os.Getenv(env.DB); v != "" {
			if db, err := strconv.Atoi(v); err == nil {
				c.DB = db
			}
		}
	}
	if env.Prefix != "" {
		if v := os.Getenv(env.Prefix); v != "" {
			c.Prefix = v
		}
	}
}

func (c *RedisConfig) validate() error {
	if c.DB < 0 {
		return fmt.Errorf("db must be non-negative: %d", c.DB)
	}
	return nil
}
