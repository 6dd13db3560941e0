package main

import (
	"net/http"

	"github.com/JaimeStill/shows-api/internal/infrastructure"
	"github.com/JaimeStill/shows-api/pkg/lifecycle"
	"github.com/JaimeStill/shows-api/pkg/metrics"
)

// buildRouter mounts the probes and the metrics endpoint beside the API.
// Everything else falls through to api.
func buildRouter(infra *infrastructure.Infrastructure, metricsCfg *metrics.Config, api http.Handler) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", handleHealthCheck)
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		handleReadinessCheck(w, infra.Lifecycle)
	})

	if infra.Metrics != nil {
		router.Handle("GET "+metricsCfg.Path, infra.Metrics.Handler())
	}

	router.Handle("/", api)
	return router
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
