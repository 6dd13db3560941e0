package main

import (
	"time"

	"github.com/JaimeStill/shows-api/internal/api"
	"github.com/JaimeStill/shows-api/internal/config"
	"github.com/JaimeStill/shows-api/internal/infrastructure"
	"github.com/JaimeStill/shows-api/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra *infrastructure.Infrastructure
	http  server.System
}

// NewServer opens the store and assembles the HTTP surface. A store that
// cannot be reached fails here rather than on the first request.
func NewServer(cfg *config.Config) (*Server, error) {
	infra := infrastructure.New(cfg)
	if err := infra.Start(); err != nil {
		return nil, err
	}

	apiHandler, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, &cfg.Metrics, apiHandler)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"store", cfg.Store.Driver,
	)

	return &Server{
		infra: infra,
		http:  server.New(&cfg.Server, router, infra.Logger, cfg.ShutdownTimeoutDuration()),
	}, nil
}

// Start begins serving and marks the service ready once startup hooks finish.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
