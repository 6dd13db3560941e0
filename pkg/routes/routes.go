package routes

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/shows-api/pkg/openapi"
)

// Register adds every route in groups to mux under basePath and records
// their operations in spec. Group tags are applied to operations without tags.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, basePath, spec, group)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, spec *openapi.Spec, group Group) {
	prefix := parentPrefix + group.Prefix

	for _, route := range group.Routes {
		path := prefix + route.Pattern
		if path == "" {
			path = "/"
		}
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}

		pattern := route.Method + " " + path
		if path == "/" {
			pattern += "{$}"
		}
		mux.HandleFunc(pattern, route.Handler)

		if route.OpenAPI != nil && spec != nil {
			if len(route.OpenAPI.Tags) == 0 {
				route.OpenAPI.Tags = group.Tags
			}
			spec.AddOperation(path, route.Method, route.OpenAPI)
		}
	}

	for _, child := range group.Children {
		registerGroup(mux, prefix, spec, child)
	}
}
