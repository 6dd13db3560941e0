package api

import (
	"net/http"

	"github.com/JaimeStill/shows-api/internal/config"
	"github.com/JaimeStill/shows-api/internal/shows"
	"github.com/JaimeStill/shows-api/pkg/openapi"
	"github.com/JaimeStill/shows-api/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	showsHandler := shows.NewHandler(domain.Shows, runtime.Logger, runtime.MaxBodySize)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		indexRoutes(),
		showsHandler.Routes(),
	)

	spec.Components.AddSchemas(shows.Spec.Schemas())
}
