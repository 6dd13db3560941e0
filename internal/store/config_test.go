package store

import (
	"testing"

	"github.com/JaimeStill/shows-api/pkg/database"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatal(err)
	}
	if cfg.Driver != DriverMemory {
		t.Errorf("Driver = %q, want %q", cfg.Driver, DriverMemory)
	}
	if !cfg.ShouldSeed() {
		t.Error("ShouldSeed() = false, want true by default")
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_STORE_DRIVER", "redis")
	t.Setenv("TEST_STORE_SEED", "false")
	t.Setenv("TEST_REDIS_ADDRESS", "cache:6380")

	cfg := &Config{}
	env := &Env{
		Driver: "TEST_STORE_DRIVER",
		Seed:   "TEST_STORE_SEED",
		Redis:  &RedisEnv{Address: "TEST_REDIS_ADDRESS"},
	}
	if err := cfg.Finalize(env); err != nil {
		t.Fatal(err)
	}

	if cfg.Driver != DriverRedis {
		t.Errorf("Driver = %q", cfg.Driver)
	}
	if cfg.ShouldSeed() {
		t.Error("ShouldSeed() = true, want false")
	}
	if cfg.Redis.Address != "cache:6380" || cfg.Redis.Prefix != "shows" {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
}

func TestConfig_Finalize_UnknownDriver(t *testing.T) {
	cfg := &Config{Driver: "bolt"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() should reject unknown driver")
	}
}

func TestConfig_Finalize_PostgresValidatesDatabase(t *testing.T) {
	cfg := &Config{Driver: DriverPostgres}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() should require database name and user")
	}

	cfg = &Config{Driver: DriverPostgres, Database: database.Config{Name: "shows", User: "shows"}}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatal(err)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want default 5432", cfg.Database.Port)
	}
}

func TestConfig_Merge(t *testing.T) {
	off := false
	base := &Config{Driver: DriverMemory}
	base.Merge(&Config{
		Driver: DriverPostgres,
		Seed:   &off,
		Redis:  RedisConfig{Prefix: "tv"},
	})

	if base.Driver != DriverPostgres || base.ShouldSeed() || base.Redis.Prefix != "tv" {
		t.Errorf("Merge() = %+v", base)
	}

	base.Merge(&Config{})
	if base.Driver != DriverPostgres || base.ShouldSeed() {
		t.Error("empty overlay should not reset values")
	}
}
