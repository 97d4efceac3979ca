// Package docgen synthesizes documentation artifacts from an API
// definition. All transforms are pure and stateless: the same
// definition always yields the same document.
package docgen

import (
	"strings"

	"github.com/devtools-pro/backend/pkg/models"
)

// OpenAPI builds an OpenAPI 3.0 document for the definition.
func OpenAPI(def models.APIDefinition) map[string]any {
	description := def.Description
	if description == "" {
		description = "API documentation"
	}
	baseURL := def.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:3000/api/v1"
	}

	paths := map[string]any{}
	for _, ep := range def.Endpoints {
		path := ep.Path
		if path == "" {
			path = "/"
		}
		method := strings.ToLower(ep.Method)
		if method == "" {
			method = "get"
		}

		parameters := ep.Parameters
		if parameters == nil {
			parameters = []models.ParameterDef{}
		}
		response := ep.Response
		if response == nil {
			response = map[string]any{}
		}

		paths[path] = map[string]any{
			method: map[string]any{
				"summary":    ep.Description,
				"tags":       []string{def.Name},
				"parameters": parameters,
				"responses": map[string]any{
					"200": jsonResponse("Success", map[string]any{
						"allOf": []any{
							map[string]any{"$ref": "#/components/schemas/Success"},
							map[string]any{
								"type":       "object",
								"properties": map[string]any{"data": response},
							},
						},
					}),
					"400": errorResponse("Bad Request"),
					"401": errorResponse("Unauthorized"),
					"500": errorResponse("Internal Server Error"),
				},
			},
		}
	}

	return map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       def.Name,
			"version":     "1.0.0",
			"description": description,
		},
		"servers": []any{
			map[string]any{
				"url":         baseURL,
				"description": "Development server",
			},
		},
		"paths": paths,
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"bearerAuth": map[string]any{
					"type":         "http",
					"scheme":       "bearer",
					"bearerFormat": "JWT",
				},
			},
			"schemas": map[string]any{
				"Error": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"success": map[string]any{"type": "boolean", "example": false},
						"error":   map[string]any{"type": "string"},
					},
				},
				"Success": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"success": map[string]any{"type": "boolean", "example": true},
						"data":    map[string]any{"type": "object"},
						"message": map[string]any{"type": "string"},
					},
				},
			},
		},
	}
}

func jsonResponse(description string, schema map[string]any) map[string]any {
	return map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": schema,
			},
		},
	}
}

func errorResponse(description string) map[string]any {
	return jsonResponse(description, map[string]any{"$ref": "#/components/schemas/Error"})
}
