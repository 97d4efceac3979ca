package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devtools-pro/backend/internal/services"
	"github.com/devtools-pro/backend/internal/validation"
)

func docsRouter(t *testing.T, generation *MockGenerationService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	schemas, err := validation.New()
	require.NoError(t, err)
	handler := NewDocsHandler(generation, &MockAccountService{}, schemas, testLogger())

	router := gin.New()
	group := router.Group("/api-docs")
	group.POST("/generate", handler.Generate)
	group.POST("/swagger", handler.Swagger)
	group.POST("/postman", handler.Postman)
	group.POST("/html", handler.HTML)
	return router
}

func validDocsPayload() map[string]any {
	return map[string]any{
		"apiDefinition": map[string]any{
			"name": "Orders API",
			"endpoints": []any{
				map[string]any{"method": "GET", "path": "/orders", "description": "List orders"},
			},
		},
		"language": "python",
	}
}

func TestDocsHandler_Generate(t *testing.T) {
	generation := &MockGenerationService{}
	generation.On("GenerateAPIDocs", mock.Anything, mock.Anything, "python", (*services.Actor)(nil)).
		Return("# Orders API", nil)

	router := docsRouter(t, generation)
	w := performJSON(router, http.MethodPost, "/api-docs/generate", validDocsPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "# Orders API", body["documentation"])
	assert.Equal(t, "markdown", body["format"])
	generation.AssertExpectations(t)
}

func TestDocsHandler_Generate_DefaultLanguage(t *testing.T) {
	generation := &MockGenerationService{}
	generation.On("GenerateAPIDocs", mock.Anything, mock.Anything, "javascript", (*services.Actor)(nil)).
		Return("docs", nil)

	payload := validDocsPayload()
	delete(payload, "language")

	router := docsRouter(t, generation)
	w := performJSON(router, http.MethodPost, "/api-docs/generate", payload)

	assert.Equal(t, http.StatusOK, w.Code)
	generation.AssertExpectations(t)
}

func TestDocsHandler_Generate_InvalidDefinition(t *testing.T) {
	generation := &MockGenerationService{}
	router := docsRouter(t, generation)

	w := performJSON(router, http.MethodPost, "/api-docs/generate", map[string]any{
		"apiDefinition": map[string]any{"description": "nameless"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	generation.AssertNotCalled(t, "GenerateAPIDocs")
}

func TestDocsHandler_Swagger(t *testing.T) {
	router := docsRouter(t, &MockGenerationService{})
	w := performJSON(router, http.MethodPost, "/api-docs/swagger", validDocsPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "openapi", body["format"])

	swagger, ok := body["swagger"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "3.0.0", swagger["openapi"])
}

func TestDocsHandler_Postman(t *testing.T) {
	router := docsRouter(t, &MockGenerationService{})
	w := performJSON(router, http.MethodPost, "/api-docs/postman", validDocsPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "postman", body["format"])

	collection, ok := body["postmanCollection"].(map[string]any)
	require.True(t, ok)
	info := collection["info"].(map[string]any)
	assert.Equal(t, "Orders API", info["name"])
}

func TestDocsHandler_HTML(t *testing.T) {
	router := docsRouter(t, &MockGenerationService{})
	w := performJSON(router, http.MethodPost, "/api-docs/html", validDocsPayload())

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "html", body["format"])
	assert.Contains(t, body["html"], "<!DOCTYPE html>")
}
