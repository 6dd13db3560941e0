// Package api assembles the JSON API: domain systems, routes, the OpenAPI
// document, and the middleware chain.
package api

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/shows-api/internal/config"
	"github.com/JaimeStill/shows-api/internal/infrastructure"
	"github.com/JaimeStill/shows-api/pkg/middleware"
	"github.com/JaimeStill/shows-api/pkg/openapi"
)

// ErrStoreNotStarted is returned when the module is built before the store is open.
var ErrStoreNotStarted = errors.New("show store not started")

// NewModule builds the API handler. infra must be started.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (http.Handler, error) {
	if infra.Store == nil {
		return nil, ErrStoreNotStarted
	}

	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET "+cfg.API.BasePath+"/openapi.json", openapi.ServeSpec(specBytes))

	mw := middleware.New()
	mw.Use(middleware.TrimSlash())
	mw.Use(middleware.RequestID())
	mw.Use(middleware.Logger(runtime.Logger))
	mw.Use(middleware.CORS(&cfg.API.CORS))
	if runtime.Metrics != nil {
		mw.Use(middleware.Metrics(runtime.Metrics))
	}

	return mw.Apply(mux), nil
}
