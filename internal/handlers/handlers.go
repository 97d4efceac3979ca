package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/services"
	"github.com/devtools-pro/backend/internal/validation"
)

// Handlers bundles the HTTP handlers for route registration.
type Handlers struct {
	Code         *CodeHandler
	Docs         *DocsHandler
	Tests        *TestsHandler
	Subscription *SubscriptionHandler
	Template     *TemplateHandler
	Health       *HealthHandler
}

func New(svc *services.Services, logger *logrus.Logger) (*Handlers, error) {
	schemaValidator, err := validation.New()
	if err != nil {
		return nil, err
	}

	return &Handlers{
		Code:         NewCodeHandler(svc.Generation, svc.Account, logger),
		Docs:         NewDocsHandler(svc.Generation, svc.Account, schemaValidator, logger),
		Tests:        NewTestsHandler(svc.Generation, svc.Account, logger),
		Subscription: NewSubscriptionHandler(svc.Account, logger),
		Template:     NewTemplateHandler(svc.Template, logger),
		Health:       NewHealthHandler(svc.Health, logger),
	}, nil
}

// respondError maps a service error to the HTTP status its kind calls
// for and renders the flat {success, error} envelope every endpoint
// uses.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	status := http.StatusInternalServerError

	switch services.KindOf(err) {
	case services.KindValidation:
		status = http.StatusBadRequest
	case services.KindAuth:
		status = http.StatusUnauthorized
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindConflict:
		status = http.StatusConflict
	case services.KindQuota:
		status = http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		logger.WithError(err).Error("Request failed")
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   services.PublicMessage(err),
	})
}

// actorFromContext rebuilds the authenticated caller placed on the
// request context by the auth middleware. Anonymous requests yield nil.
func actorFromContext(c *gin.Context, accounts services.AccountServiceInterface) *services.Actor {
	rawID, ok := c.Get("user_id")
	if !ok {
		return nil
	}
	userID, ok := rawID.(uuid.UUID)
	if !ok {
		return nil
	}

	email := c.GetString("user_email")

	return &services.Actor{
		UserID: userID,
		Email:  email,
		Plan:   accounts.PlanOf(c.Request.Context(), userID),
	}
}

// bindJSON decodes and validates the request body, translating gin's
// binding errors into the shared envelope with a 400.
func bindJSON(c *gin.Context, logger *logrus.Logger, req any, message string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.WithError(err).Warn("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   message,
		})
		return false
	}
	return true
}
