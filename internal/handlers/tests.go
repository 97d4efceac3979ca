package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/catalog"
	"github.com/devtools-pro/backend/internal/services"
	"github.com/devtools-pro/backend/pkg/models"
)

type TestsHandler struct {
	generation services.GenerationServiceInterface
	accounts   services.AccountServiceInterface
	logger     *logrus.Logger
}

func NewTestsHandler(generation services.GenerationServiceInterface, accounts services.AccountServiceInterface, logger *logrus.Logger) *TestsHandler {
	return &TestsHandler{
		generation: generation,
		accounts:   accounts,
		logger:     logger,
	}
}

func (h *TestsHandler) Unit(c *gin.Context) {
	var req models.UnitTestRequest
	if !bindJSON(c, h.logger, &req, "Code is required") {
		return
	}

	actor := actorFromContext(c, h.accounts)
	tests, framework, err := h.generation.GenerateUnitTests(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"tests":     tests,
		"framework": framework,
	})
}

func (h *TestsHandler) Integration(c *gin.Context) {
	var req models.IntegrationTestRequest
	if !bindJSON(c, h.logger, &req, "API endpoints are required") {
		return
	}

	actor := actorFromContext(c, h.accounts)
	tests, framework, err := h.generation.GenerateIntegrationTests(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"tests":     tests,
		"framework": framework,
	})
}

func (h *TestsHandler) E2E(c *gin.Context) {
	var req models.E2ETestRequest
	if !bindJSON(c, h.logger, &req, "User flow and features are required") {
		return
	}

	actor := actorFromContext(c, h.accounts)
	tests, framework, err := h.generation.GenerateE2ETests(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"tests":     tests,
		"framework": framework,
	})
}

func (h *TestsHandler) Coverage(c *gin.Context) {
	var req models.CoverageRequest
	if !bindJSON(c, h.logger, &req, "Test results are required") {
		return
	}

	actor := actorFromContext(c, h.accounts)
	report, err := h.generation.GenerateCoverageReport(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"report":  report,
	})
}

func (h *TestsHandler) BestPractices(c *gin.Context) {
	language := c.Query("language")

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"bestPractices": catalog.BestPractices(language),
	})
}
