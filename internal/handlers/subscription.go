package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/catalog"
	"github.com/devtools-pro/backend/internal/services"
	"github.com/devtools-pro/backend/pkg/models"
)

type SubscriptionHandler struct {
	accounts services.AccountServiceInterface
	logger   *logrus.Logger
}

func NewSubscriptionHandler(accounts services.AccountServiceInterface, logger *logrus.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		accounts: accounts,
		logger:   logger,
	}
}

func (h *SubscriptionHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"plans":   catalog.Plans(),
	})
}

func (h *SubscriptionHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, h.logger, &req, "Email, password and name are required") {
		return
	}

	user, token, err := h.accounts.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userWithToken(user, token),
	})
}

func (h *SubscriptionHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, h.logger, &req, "Email and password are required") {
		return
	}

	user, token, err := h.accounts.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userWithToken(user, token),
	})
}

func (h *SubscriptionHandler) Profile(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		respondError(c, h.logger, services.AuthError("Invalid token"))
		return
	}

	user, err := h.accounts.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		respondError(c, h.logger, services.AuthError("Invalid token"))
		return
	}

	var req models.UpgradeRequest
	if !bindJSON(c, h.logger, &req, "Plan is required") {
		return
	}

	plan, err := h.accounts.UpgradePlan(c.Request.Context(), userID, req.Plan)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Plan upgraded successfully",
		"plan":    plan,
	})
}

func (h *SubscriptionHandler) Usage(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		respondError(c, h.logger, services.AuthError("Invalid token"))
		return
	}

	user, err := h.accounts.Usage(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"usage": gin.H{
			"id":              user.ID,
			"email":           user.Email,
			"plan":            user.Plan,
			"usage_count":     user.UsageCount,
			"last_reset_date": user.LastResetDate,
		},
	})
}

// userWithToken flattens the issued token into the user payload the
// way register and login responses expose it.
func userWithToken(user *models.User, token string) gin.H {
	return gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"plan":  user.Plan,
		"token": token,
	}
}

func authedUserID(c *gin.Context) (uuid.UUID, bool) {
	rawID, ok := c.Get("user_id")
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := rawID.(uuid.UUID)
	return userID, ok
}
