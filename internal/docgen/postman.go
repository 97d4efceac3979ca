package docgen

import (
	"encoding/json"
	"strings"

	"github.com/devtools-pro/backend/pkg/models"
)

// PostmanCollection builds a Postman v2.1 collection for the
// definition.
func PostmanCollection(def models.APIDefinition) map[string]any {
	baseURL := def.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:3000/api/v1"
	}

	items := []any{}
	for _, ep := range def.Endpoints {
		path := ep.Path
		if path == "" {
			path = "/"
		}
		method := strings.ToUpper(ep.Method)
		if method == "" {
			method = "GET"
		}

		headers := []any{
			map[string]any{"key": "Content-Type", "value": "application/json"},
		}
		if ep.Auth != "" {
			headers = append(headers, map[string]any{"key": "Authorization", "value": ep.Auth})
		}

		parameters := ep.Parameters
		if parameters == nil {
			parameters = []models.ParameterDef{}
		}
		rawBody, _ := json.MarshalIndent(map[string]any{
			"description": ep.Description,
			"parameters":  parameters,
		}, "", "  ")

		segments := []string{}
		for _, s := range strings.Split(path, "/") {
			if s != "" {
				segments = append(segments, s)
			}
		}

		items = append(items, map[string]any{
			"name": method + " " + path,
			"request": map[string]any{
				"method": method,
				"header": headers,
				"body": map[string]any{
					"mode": "raw",
					"raw":  string(rawBody),
				},
				"url": map[string]any{
					"raw":  "{{baseUrl}}" + path,
					"host": []string{"{{baseUrl}}"},
					"path": segments,
				},
				"response": []any{},
			},
		})
	}

	return map[string]any{
		"info": map[string]any{
			"name":   def.Name,
			"schema": "https://schema.getpostman.com/json/collection/v2.1.0/collection.json",
		},
		"variable": []any{
			map[string]any{"key": "baseUrl", "value": baseURL},
		},
		"item": items,
	}
}
