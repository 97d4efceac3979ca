package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/services"
	"github.com/devtools-pro/backend/pkg/models"
)

type TemplateHandler struct {
	templates services.TemplateServiceInterface
	logger    *logrus.Logger
}

func NewTemplateHandler(templates services.TemplateServiceInterface, logger *logrus.Logger) *TemplateHandler {
	return &TemplateHandler{
		templates: templates,
		logger:    logger,
	}
}

func (h *TemplateHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"templates": h.templates.List(),
	})
}

func (h *TemplateHandler) Get(c *gin.Context) {
	template, err := h.templates.Get(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"template": template,
	})
}

func (h *TemplateHandler) ByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"templates": h.templates.ByCategory(c.Param("category")),
	})
}

func (h *TemplateHandler) ByLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"templates": h.templates.ByLanguage(c.Param("language")),
	})
}

func (h *TemplateHandler) Generate(c *gin.Context) {
	var req models.GenerateTemplateRequest
	if !bindJSON(c, h.logger, &req, "Template ID is required") {
		return
	}

	code, err := h.templates.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"code":    code,
	})
}
