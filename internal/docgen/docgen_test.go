package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtools-pro/backend/pkg/models"
)

func sampleDefinition() models.APIDefinition {
	return models.APIDefinition{
		Name:        "Orders API",
		Description: "Order management",
		BaseURL:     "https://api.example.com/v1",
		Auth:        "Bearer token",
		Endpoints: []models.EndpointDef{
			{
				Method:      "POST",
				Path:        "/orders",
				Description: "Create an order",
				Auth:        "Bearer {{token}}",
				Parameters: []models.ParameterDef{
					{Name: "sku", Type: "string", Required: true},
				},
				Response: map[string]any{"id": "string"},
			},
			{
				Path: "/orders/{id}",
			},
		},
	}
}

func TestOpenAPI(t *testing.T) {
	doc := OpenAPI(sampleDefinition())

	assert.Equal(t, "3.0.0", doc["openapi"])

	info, ok := doc["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Orders API", info["title"])
	assert.Equal(t, "Order management", info["description"])

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, paths, "/orders")

	post, ok := paths["/orders"].(map[string]any)["post"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Create an order", post["summary"])

	responses, ok := post["responses"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, responses, "200")
	assert.Contains(t, responses, "400")
	assert.Contains(t, responses, "401")
	assert.Contains(t, responses, "500")

	// Method defaults to GET for the sparse endpoint
	_, hasGet := paths["/orders/{id}"].(map[string]any)["get"]
	assert.True(t, hasGet)
}

func TestOpenAPI_Defaults(t *testing.T) {
	doc := OpenAPI(models.APIDefinition{Name: "X", Endpoints: []models.EndpointDef{{}}})

	info := doc["info"].(map[string]any)
	assert.Equal(t, "API documentation", info["description"])

	servers := doc["servers"].([]any)
	require.Len(t, servers, 1)
	assert.Equal(t, "http://localhost:3000/api/v1", servers[0].(map[string]any)["url"])

	paths := doc["paths"].(map[string]any)
	assert.Contains(t, paths, "/")
}

func TestOpenAPI_Deterministic(t *testing.T) {
	def := sampleDefinition()
	assert.Equal(t, OpenAPI(def), OpenAPI(def))
}

func TestPostmanCollection(t *testing.T) {
	collection := PostmanCollection(sampleDefinition())

	info := collection["info"].(map[string]any)
	assert.Equal(t, "Orders API", info["name"])
	assert.Equal(t, "https://schema.getpostman.com/json/collection/v2.1.0/collection.json", info["schema"])

	variables := collection["variable"].([]any)
	require.Len(t, variables, 1)
	assert.Equal(t, "https://api.example.com/v1", variables[0].(map[string]any)["value"])

	items := collection["item"].([]any)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, "POST /orders", first["name"])

	request := first["request"].(map[string]any)
	assert.Equal(t, "POST", request["method"])

	url := request["url"].(map[string]any)
	assert.Equal(t, "{{baseUrl}}/orders", url["raw"])
	assert.Equal(t, []string{"orders"}, url["path"])

	// Endpoint auth appears as an Authorization header
	headers := request["header"].([]any)
	require.Len(t, headers, 2)
	assert.Equal(t, "Authorization", headers[1].(map[string]any)["key"])

	// Sparse endpoint defaults and nested path split
	second := items[1].(map[string]any)
	assert.Equal(t, "GET /orders/{id}", second["name"])
	secondURL := second["request"].(map[string]any)["url"].(map[string]any)
	assert.Equal(t, []string{"orders", "{id}"}, secondURL["path"])
}

func TestHTML(t *testing.T) {
	page := HTML(sampleDefinition())

	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, "Orders API")
	assert.Contains(t, page, "/orders")
	assert.Contains(t, page, "Create an order")
}

func TestHTML_EscapesUserContent(t *testing.T) {
	def := models.APIDefinition{
		Name: "<script>alert(1)</script>",
		Endpoints: []models.EndpointDef{
			{Path: "/x", Description: "<img onerror=x>"},
		},
	}

	page := HTML(def)

	assert.NotContains(t, page, "<script>alert(1)</script>")
	assert.Contains(t, page, "&lt;script&gt;")
	assert.NotContains(t, page, "<img onerror=x>")
}
