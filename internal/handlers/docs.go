package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/docgen"
	"github.com/devtools-pro/backend/internal/services"
	"github.com/devtools-pro/backend/internal/validation"
	"github.com/devtools-pro/backend/pkg/models"
)

type DocsHandler struct {
	generation services.GenerationServiceInterface
	accounts   services.AccountServiceInterface
	schemas    *validation.SchemaValidator
	logger     *logrus.Logger
}

func NewDocsHandler(generation services.GenerationServiceInterface, accounts services.AccountServiceInterface, schemas *validation.SchemaValidator, logger *logrus.Logger) *DocsHandler {
	return &DocsHandler{
		generation: generation,
		accounts:   accounts,
		schemas:    schemas,
		logger:     logger,
	}
}

// bindDefinition decodes the request and runs the API definition
// through the JSON schema before any generator touches it.
func (h *DocsHandler) bindDefinition(c *gin.Context) (*models.DocsRequest, bool) {
	var req models.DocsRequest
	if !bindJSON(c, h.logger, &req, "API definition is required") {
		return nil, false
	}

	if err := h.schemas.ValidateAPIDefinition(req.APIDefinition); err != nil {
		h.logger.WithError(err).Warn("API definition failed schema validation")
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return nil, false
	}

	if req.Language == "" {
		req.Language = "javascript"
	}
	return &req, true
}

func (h *DocsHandler) Generate(c *gin.Context) {
	req, ok := h.bindDefinition(c)
	if !ok {
		return
	}

	actor := actorFromContext(c, h.accounts)
	documentation, err := h.generation.GenerateAPIDocs(c.Request.Context(), req.APIDefinition, req.Language, actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"documentation": documentation,
		"format":        "markdown",
	})
}

func (h *DocsHandler) Swagger(c *gin.Context) {
	req, ok := h.bindDefinition(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"swagger": docgen.OpenAPI(req.APIDefinition),
		"format":  "openapi",
	})
}

func (h *DocsHandler) Postman(c *gin.Context) {
	req, ok := h.bindDefinition(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"postmanCollection": docgen.PostmanCollection(req.APIDefinition),
		"format":            "postman",
	})
}

func (h *DocsHandler) HTML(c *gin.Context) {
	req, ok := h.bindDefinition(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"html":    docgen.HTML(req.APIDefinition),
		"format":  "html",
	})
}
