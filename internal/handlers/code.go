package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/services"
	"github.com/devtools-pro/backend/pkg/models"
)

type CodeHandler struct {
	generation services.GenerationServiceInterface
	accounts   services.AccountServiceInterface
	logger     *logrus.Logger
}

func NewCodeHandler(generation services.GenerationServiceInterface, accounts services.AccountServiceInterface, logger *logrus.Logger) *CodeHandler {
	return &CodeHandler{
		generation: generation,
		accounts:   accounts,
		logger:     logger,
	}
}

func (h *CodeHandler) Generate(c *gin.Context) {
	var req models.GenerateCodeRequest
	if !bindJSON(c, h.logger, &req, "Language and description are required") {
		return
	}

	actor := actorFromContext(c, h.accounts)
	code, err := h.generation.GenerateCode(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"code":    code,
	})
}

func (h *CodeHandler) Optimize(c *gin.Context) {
	var req models.OptimizeCodeRequest
	if !bindJSON(c, h.logger, &req, "Code and language are required") {
		return
	}

	actor := actorFromContext(c, h.accounts)
	optimized, improvements, err := h.generation.OptimizeCode(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"optimizedCode": optimized,
		"improvements":  improvements,
	})
}

func (h *CodeHandler) Explain(c *gin.Context) {
	var req models.ExplainCodeRequest
	if !bindJSON(c, h.logger, &req, "Code is required") {
		return
	}

	actor := actorFromContext(c, h.accounts)
	explanation, err := h.generation.ExplainCode(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"explanation": explanation,
	})
}

func (h *CodeHandler) DetectBugs(c *gin.Context) {
	var req models.DetectBugsRequest
	if !bindJSON(c, h.logger, &req, "Code and language are required") {
		return
	}

	actor := actorFromContext(c, h.accounts)
	review, err := h.generation.DetectBugs(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"review":  review,
	})
}
