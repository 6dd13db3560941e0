package shows

import "github.com/JaimeStill/shows-api/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

// Spec contains OpenAPI operation definitions for all show endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List shows",
		Description: "Returns every show ordered by id, optionally keeping only shows with at least minEpisodes seen",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("minEpisodes", "integer", "Minimum episodes seen", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Show list, or a notice when the filter matches nothing", "ShowListEnvelope"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Get show by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "integer", "Show ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Show", "ShowEnvelope"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create show",
		Description: "Stores a new show and returns the full list",
		RequestBody: openapi.RequestBodyJSON("ShowCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Full show list", "ShowListEnvelope"),
			400: openapi.ResponseRef("BadRequest"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update show",
		Description: "Replaces name and episodes_seen of an existing show and returns the full list",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "integer", "Show ID"),
		},
		RequestBody: openapi.RequestBodyJSON("ShowCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Full show list", "ShowListEnvelope"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	Delete: &openapi.Operation{
		Summary: "Delete show",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "integer", "Show ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Show deleted", "Envelope"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the show domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Show": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "integer"},
				"name":          {Type: "string"},
				"episodes_seen": {Type: "integer"},
			},
		},
		"ShowCommand": {
			Type:     "object",
			Required: []string{"name", "episodes_seen"},
			Properties: map[string]*openapi.Schema{
				"name":          {Type: "string", Example: "Dark"},
				"episodes_seen": {Type: "integer", Example: 26},
			},
		},
		"ShowEnvelope": envelope(map[string]*openapi.Schema{
			"result": openapi.SchemaRef("Show"),
		}),
		"ShowListEnvelope": envelope(map[string]*openapi.Schema{
			"shows":    {Type: "array", Items: openapi.SchemaRef("Show")},
			"response": {Type: "string", Description: "Present instead of shows when minEpisodes matches nothing"},
		}),
	}
}

func envelope(result map[string]*openapi.Schema) *openapi.Schema {
	return &openapi.Schema{
		Type:     "object",
		Required: []string{"code", "success", "message", "result"},
		Properties: map[string]*openapi.Schema{
			"code":    {Type: "integer"},
			"success": {Type: "boolean"},
			"message": {Type: "string"},
			"result":  {Type: "object", Properties: result},
		},
	}
}
