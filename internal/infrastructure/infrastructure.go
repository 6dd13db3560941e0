// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (lifecycle, logging, metrics, show store)
// that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/shows-api/internal/config"
	"github.com/JaimeStill/shows-api/internal/shows"
	"github.com/JaimeStill/shows-api/internal/store"
	"github.com/JaimeStill/shows-api/pkg/lifecycle"
	"github.com/JaimeStill/shows-api/pkg/logging"
	"github.com/JaimeStill/shows-api/pkg/metrics"
)

// Infrastructure holds the core systems required by all domain modules.
// Metrics is nil when disabled. Store is nil until Start succeeds.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Store     shows.Repository

	storeCfg *store.Config
}

// New creates an Infrastructure from the application configuration.
// It performs no I/O; call Start to open the store.
func New(cfg *config.Config) *Infrastructure {
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging),
		Metrics:   m,
		storeCfg:  &cfg.Store,
	}
}

// Start opens the configured show store and registers its shutdown hooks.
func (i *Infrastructure) Start() error {
	repo, err := store.Open(i.storeCfg, store.Deps{
		Logger:    i.Logger,
		Lifecycle: i.Lifecycle,
		Metrics:   i.Metrics,
	})
	if err != nil {
		return fmt.Errorf("store start failed: %w", err)
	}
	i.Store = repo
	return nil
}
