package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/services"
)

type HealthHandler struct {
	health *services.HealthService
	logger *logrus.Logger
}

func NewHealthHandler(health *services.HealthService, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		health: health,
		logger: logger,
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	status := h.health.CheckHealth()

	httpStatus := http.StatusOK
	if status.Status == "error" {
		httpStatus = http.StatusInternalServerError
	}

	c.JSON(httpStatus, status)
}
