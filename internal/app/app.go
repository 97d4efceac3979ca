package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/config"
	"github.com/devtools-pro/backend/internal/database"
	"github.com/devtools-pro/backend/internal/handlers"
	"github.com/devtools-pro/backend/internal/messaging"
	"github.com/devtools-pro/backend/internal/middleware"
	"github.com/devtools-pro/backend/internal/services"
)

type App struct {
	config   *config.Config
	logger   *logrus.Logger
	db       *database.Database
	producer *messaging.UsageProducer
	services *services.Services
	handlers *handlers.Handlers
	router   *gin.Engine
}

func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: setupLogger(cfg),
	}

	db, err := database.New(cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	app.producer = messaging.NewUsageProducer(cfg, app.logger)

	svc, err := services.New(cfg, app.logger, db, app.producer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	app.services = svc

	app.handlers, err = handlers.New(svc, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	app.setupRouter()

	return app, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if err := a.producer.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing Kafka producer")
	}

	if err := a.db.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing database connections")
		return err
	}

	return nil
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

func (a *App) setupRouter() {
	if a.config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.Recovery(a.logger))
	router.Use(middleware.CORS(a.config))

	// Prometheus metrics endpoint (no auth required)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.Auth(a.services.Auth, a.logger)
	optionalAuth := middleware.OptionalAuth(a.services.Auth)
	quota := middleware.Quota(a.services.Quota, a.services.Account, a.logger)

	api := router.Group("/api/v1")
	{
		api.GET("/health", a.handlers.Health.Check)

		// Completion-backed endpoints count against the caller's plan
		// quota; anonymous callers are metered per IP at the free tier.
		code := api.Group("/code", optionalAuth, quota)
		{
			code.POST("/generate", a.handlers.Code.Generate)
			code.POST("/optimize", a.handlers.Code.Optimize)
			code.POST("/explain", a.handlers.Code.Explain)
			code.POST("/detect-bugs", a.handlers.Code.DetectBugs)
		}

		apiDocs := api.Group("/api-docs")
		{
			apiDocs.POST("/generate", optionalAuth, quota, a.handlers.Docs.Generate)
			apiDocs.POST("/swagger", a.handlers.Docs.Swagger)
			apiDocs.POST("/postman", a.handlers.Docs.Postman)
			apiDocs.POST("/html", a.handlers.Docs.HTML)
		}

		tests := api.Group("/tests")
		{
			tests.POST("/unit", optionalAuth, quota, a.handlers.Tests.Unit)
			tests.POST("/integration", optionalAuth, quota, a.handlers.Tests.Integration)
			tests.POST("/e2e", optionalAuth, quota, a.handlers.Tests.E2E)
			tests.POST("/coverage", optionalAuth, quota, a.handlers.Tests.Coverage)
			tests.GET("/best-practices", a.handlers.Tests.BestPractices)
		}

		subscriptions := api.Group("/subscriptions")
		{
			subscriptions.GET("/plans", a.handlers.Subscription.Plans)
			subscriptions.POST("/register", a.handlers.Subscription.Register)
			subscriptions.POST("/login", a.handlers.Subscription.Login)
			subscriptions.GET("/profile", auth, a.handlers.Subscription.Profile)
			subscriptions.POST("/upgrade", auth, a.handlers.Subscription.Upgrade)
			subscriptions.GET("/usage", auth, a.handlers.Subscription.Usage)
		}

		templates := api.Group("/templates")
		{
			templates.GET("/templates", a.handlers.Template.List)
			templates.GET("/templates/category/:category", a.handlers.Template.ByCategory)
			templates.GET("/templates/language/:language", a.handlers.Template.ByLanguage)
			templates.GET("/templates/:id", a.handlers.Template.Get)
			templates.POST("/generate", a.handlers.Template.Generate)
		}
	}

	a.router = router
}
