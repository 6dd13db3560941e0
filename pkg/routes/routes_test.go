package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/shows-api/pkg/openapi"
	"github.com/JaimeStill/shows-api/pkg/routes"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test", "0.0.0")

	routes.Register(mux, "/api", spec,
		routes.Group{
			Prefix: "/shows",
			Tags:   []string{"Shows"},
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: write("list"), OpenAPI: &openapi.Operation{Summary: "List"}},
				{Method: "GET", Pattern: "/{id}", Handler: write("find")},
			},
			Children: []routes.Group{
				{Prefix: "/stats", Routes: []routes.Route{{Method: "GET", Pattern: "", Handler: write("stats")}}},
			},
		},
	)

	tests := []struct {
		method, target, want string
	}{
		{"GET", "/api/shows", "list"},
		{"GET", "/api/shows/7", "find"},
		{"GET", "/api/shows/stats", "stats"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
		if rec.Body.String() != tt.want {
			t.Errorf("%s %s = %q, want %q", tt.method, tt.target, rec.Body.String(), tt.want)
		}
	}

	op := spec.Paths["/api/shows"].Get
	if op == nil || len(op.Tags) != 1 || op.Tags[0] != "Shows" {
		t.Errorf("operation = %+v, want Shows tag", op)
	}
	if _, ok := spec.Paths["/api/shows/{id}"]; ok {
		t.Error("routes without an operation should not be documented")
	}
}

func TestRegister_RootMatchesExactly(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, "", nil, routes.Group{
		Routes: []routes.Route{{Method: "GET", Pattern: "/", Handler: write("root")}},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Body.String() != "root" {
		t.Errorf("GET / = %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /unknown status = %d, want 404", rec.Code)
	}
}

func TestRegister_RootUnderBasePath(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("test", "1.0.0")
	routes.Register(mux, "/v1", spec, routes.Group{
		Routes: []routes.Route{{
			Method:  "GET",
			Pattern: "/",
			Handler: write("root"),
			OpenAPI: &openapi.Operation{Summary: "root"},
		}},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/v1", nil))
	if rec.Body.String() != "root" {
		t.Errorf("GET /v1 = %q", rec.Body.String())
	}
	if _, ok := spec.Paths["/v1"]; !ok {
		t.Error("operation should be documented at /v1")
	}
}
