package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/messaging"
)

// publishTimeout bounds the background usage-event publish; it is
// detached from the request context so a slow broker never holds a
// response.
const publishTimeout = 5 * time.Second

// Actor identifies the authenticated caller of a generation endpoint.
// Anonymous callers pass a nil *Actor and no usage is recorded.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Plan   string
}

type usagePublisher interface {
	PublishUsage(ctx context.Context, event messaging.UsageEvent) error
}

// UsageService accounts successful generations: it bumps the user's
// usage counter and emits a usage event. Both paths are fail-open so
// accounting can never fail, or stall, the request it belongs to.
type UsageService struct {
	repo      *UserRepository
	publisher usagePublisher
	logger    *logrus.Logger
}

func NewUsageService(repo *UserRepository, publisher usagePublisher, logger *logrus.Logger) *UsageService {
	return &UsageService{repo: repo, publisher: publisher, logger: logger}
}

func (s *UsageService) Record(ctx context.Context, actor *Actor, endpoint string) {
	if actor == nil {
		return
	}

	if err := s.repo.IncrementUsage(ctx, actor.UserID); err != nil {
		s.logger.WithError(err).WithField("user_id", actor.UserID).Warn("Failed to record usage")
	}

	if s.publisher != nil {
		event := messaging.UsageEvent{
			UserID:   actor.UserID,
			Endpoint: endpoint,
			Plan:     actor.Plan,
		}
		go func() {
			publishCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
			defer cancel()
			if err := s.publisher.PublishUsage(publishCtx, event); err != nil {
				s.logger.WithError(err).WithField("user_id", event.UserID).Warn("Failed to publish usage event")
			}
		}()
	}
}
