package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/services"
	"github.com/devtools-pro/backend/pkg/models"
)

// Quota enforces the per-plan sliding-window limit on generation
// endpoints. Authenticated callers are counted per user, anonymous
// callers per client IP at the free-plan limit. Redis trouble fails
// open inside QuotaService so an outage never blocks traffic.
func Quota(quota *services.QuotaService, accounts services.AccountServiceInterface, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := fmt.Sprintf("ip:%s", c.ClientIP())
		plan := models.PlanFree

		if rawID, ok := c.Get("user_id"); ok {
			if userID, ok := rawID.(uuid.UUID); ok {
				subject = fmt.Sprintf("user:%s", userID)
				plan = accounts.PlanOf(c.Request.Context(), userID)
			}
		}

		if !quota.Allow(c.Request.Context(), subject, plan) {
			logger.WithField("subject", subject).WithField("plan", plan).Info("Request over plan quota")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
