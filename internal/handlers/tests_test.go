package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devtools-pro/backend/internal/services"
)

func testsRouter(generation *MockGenerationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTestsHandler(generation, &MockAccountService{}, testLogger())

	router := gin.New()
	group := router.Group("/tests")
	group.POST("/unit", handler.Unit)
	group.POST("/integration", handler.Integration)
	group.POST("/e2e", handler.E2E)
	group.POST("/coverage", handler.Coverage)
	group.GET("/best-practices", handler.BestPractices)
	return router
}

func TestTestsHandler_Unit(t *testing.T) {
	generation := &MockGenerationService{}
	generation.On("GenerateUnitTests", mock.Anything, mock.Anything, (*services.Actor)(nil)).
		Return("describe('add', ...)", "Jest", nil)

	router := testsRouter(generation)
	w := performJSON(router, http.MethodPost, "/tests/unit", map[string]any{
		"code": "function add(a, b) { return a + b; }",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "describe('add', ...)", body["tests"])
	assert.Equal(t, "Jest", body["framework"])
}

func TestTestsHandler_Unit_MissingCode(t *testing.T) {
	generation := &MockGenerationService{}
	router := testsRouter(generation)

	w := performJSON(router, http.MethodPost, "/tests/unit", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Code is required", decodeBody(t, w)["error"])
	generation.AssertNotCalled(t, "GenerateUnitTests")
}

func TestTestsHandler_Integration_MissingEndpoints(t *testing.T) {
	router := testsRouter(&MockGenerationService{})

	w := performJSON(router, http.MethodPost, "/tests/integration", map[string]any{
		"apiEndpoints": []any{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "API endpoints are required", decodeBody(t, w)["error"])
}

func TestTestsHandler_E2E(t *testing.T) {
	generation := &MockGenerationService{}
	generation.On("GenerateE2ETests", mock.Anything, mock.Anything, (*services.Actor)(nil)).
		Return("cy.visit('/')", "Cypress/Playwright", nil)

	router := testsRouter(generation)
	w := performJSON(router, http.MethodPost, "/tests/e2e", map[string]any{
		"userFlow": "login then checkout",
		"features": []any{map[string]any{"name": "checkout", "description": "cart to payment"}},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cypress/Playwright", decodeBody(t, w)["framework"])
}

func TestTestsHandler_Coverage(t *testing.T) {
	generation := &MockGenerationService{}
	generation.On("GenerateCoverageReport", mock.Anything, mock.Anything, (*services.Actor)(nil)).
		Return("coverage: 84%", nil)

	router := testsRouter(generation)
	w := performJSON(router, http.MethodPost, "/tests/coverage", map[string]any{
		"testResults": []any{map[string]any{"suite": "auth", "passed": 10}},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "coverage: 84%", decodeBody(t, w)["report"])
}

func TestTestsHandler_BestPractices(t *testing.T) {
	router := testsRouter(&MockGenerationService{})

	w := performJSON(router, http.MethodGet, "/tests/best-practices?language=python", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	practices, ok := body["bestPractices"].([]any)
	require.True(t, ok)
	require.Len(t, practices, 10)
	assert.Contains(t, practices[0], "pytest")
}

func TestTestsHandler_BestPractices_DefaultsToJavascript(t *testing.T) {
	router := testsRouter(&MockGenerationService{})

	w := performJSON(router, http.MethodGet, "/tests/best-practices", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	practices := decodeBody(t, w)["bestPractices"].([]any)
	assert.Contains(t, practices[1], "AAA pattern")
}
