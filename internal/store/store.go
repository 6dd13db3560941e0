// Package store provides the backends behind shows.Repository. Backends
// register a Factory under a driver name and are opened from Config.
package store

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/JaimeStill/shows-api/internal/shows"
	"github.com/JaimeStill/shows-api/pkg/lifecycle"
	"github.com/JaimeStill/shows-api/pkg/metrics"
)

// Driver names.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Deps are the runtime services a backend may need. Backends holding
// connections release them when Lifecycle shuts down.
type Deps struct {
	Logger    *slog.Logger
	Lifecycle *lifecycle.Coordinator
	Metrics   *metrics.Metrics
}

// Factory opens a backend from cfg.
type Factory func(cfg *Config, deps Deps) (shows.Repository, error)

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register registers a backend factory under name.
// It panics if the name is already registered or the factory is nil.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if f == nil {
		panic("store: Register factory is nil")
	}
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("store: driver %q already registered", name))
	}
	factories[name] = f
}

// Registered reports whether a factory exists for name.
func Registered(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Drivers returns a sorted list of registered driver names.
func Drivers() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open creates the backend named by cfg.Driver. When deps.Metrics is set
// the backend is wrapped to count operations.
func Open(cfg *Config, deps Deps) (shows.Repository, error) {
	mu.RLock()
	f, ok := factories[cfg.Driver]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("store: unknown driver %q (registered: %v)", cfg.Driver, Drivers())
	}

	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Lifecycle == nil {
		deps.Lifecycle = lifecycle.New()
	}

	repo, err := f(cfg, deps)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", cfg.Driver, err)
	}

	deps.Logger.Info("show store opened", "driver", cfg.Driver)

	if deps.Metrics == nil {
		return repo, nil
	}
	return newInstrumented(repo, cfg.Driver, deps.Metrics), nil
}
