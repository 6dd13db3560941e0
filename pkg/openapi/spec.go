package openapi

import (
	"encoding/json"
	"net/http"
)

// NewSpec creates an empty OpenAPI 3.1 document.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI: "3.1.0",
		Info: &Info{
			Title:   title,
			Version: version,
		},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

func (s *Spec) SetDescription(description string) {
	s.Info.Description = description
}

// AddServer appends a server URL. Empty URLs are ignored.
func (s *Spec) AddServer(url string) {
	if url == "" {
		return
	}
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddOperation attaches op to path under method. Unsupported methods are ignored.
func (s *Spec) AddOperation(path, method string, op *Operation) {
	if op == nil {
		return
	}

	item, ok := s.Paths[path]
	if !ok {
		item = &PathItem{}
		s.Paths[path] = item
	}

	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodDelete:
		item.Delete = op
	}
}

// NewComponents creates Components with the shared Envelope schema and
// the error responses every operation may reference.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Envelope": {
				Type:     "object",
				Required: []string{"code", "success", "message", "result"},
				Properties: map[string]*Schema{
					"code":    {Type: "integer", Example: 200},
					"success": {Type: "boolean", Description: "true when 200 <= code < 300"},
					"message": {Type: "string"},
					"result":  {Type: "object", Description: "Keyed payload, null when absent"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":          ResponseJSON("Malformed request", "Envelope"),
			"NotFound":            ResponseJSON("Resource not found", "Envelope"),
			"UnprocessableEntity": ResponseJSON("Missing required fields", "Envelope"),
		},
	}
}

// AddSchemas merges schemas into the component set.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// MarshalJSON renders the spec as indented JSON.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// ServeSpec serves a pre-rendered spec document.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
