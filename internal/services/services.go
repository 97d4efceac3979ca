package services

import (
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/completion"
	"github.com/devtools-pro/backend/internal/config"
	"github.com/devtools-pro/backend/internal/database"
	"github.com/devtools-pro/backend/internal/messaging"
)

type Services struct {
	Auth       *AuthService
	Account    *AccountService
	Generation *GenerationService
	Template   *TemplateService
	Quota      *QuotaService
	Usage      *UsageService
	Health     *HealthService
}

func New(cfg *config.Config, logger *logrus.Logger, db *database.Database, producer *messaging.UsageProducer) (*Services, error) {
	auth := NewAuthService(cfg)
	repo := NewUserRepository(db.PG)
	cache := NewResponseCache(db.Redis, cfg.Cache, logger)

	// A nil *UsageProducer must stay a nil interface inside the service.
	var publisher usagePublisher
	if producer != nil {
		publisher = producer
	}
	usage := NewUsageService(repo, publisher, logger)
	completer := completion.NewClient(cfg.Completion, logger)

	return &Services{
		Auth:       auth,
		Account:    NewAccountService(repo, auth, logger),
		Generation: NewGenerationService(completer, cache, usage, cfg.Cache, logger),
		Template:   NewTemplateService(cache, cfg.Cache, logger),
		Quota:      NewQuotaService(cfg, db.Redis, logger),
		Usage:      usage,
		Health:     NewHealthService(logger, db),
	}, nil
}
