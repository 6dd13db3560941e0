package api

import (
	"net/http"

	"github.com/JaimeStill/shows-api/pkg/handlers"
	"github.com/JaimeStill/shows-api/pkg/openapi"
	"github.com/JaimeStill/shows-api/pkg/routes"
)

func indexRoutes() routes.Group {
	return routes.Group{
		Tags:        []string{"Utility"},
		Description: "Greeting and echo endpoints",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "/",
				Handler: handleIndex,
				OpenAPI: &openapi.Operation{
					Summary: "Greeting",
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Greeting with result.content", "Envelope"),
					},
				},
			},
			{
				Method:  "GET",
				Pattern: "/mirror/{name}",
				Handler: handleMirror,
				OpenAPI: &openapi.Operation{
					Summary: "Echo a path segment",
					Parameters: []*openapi.Parameter{
						openapi.PathParam("name", "string", "Value to echo"),
					},
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Echoed value in result.name", "Envelope"),
					},
				},
			},
		},
	}
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	handlers.OK(w, handlers.Result{"content": "hello world!"})
}

func handleMirror(w http.ResponseWriter, r *http.Request) {
	handlers.OK(w, handlers.Result{"name": r.PathValue("name")})
}
