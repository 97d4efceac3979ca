package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/config"
	"github.com/devtools-pro/backend/pkg/models"
)

// QuotaService enforces per-plan generation quotas with a sliding
// window in Redis. A plan limit of 0 means unlimited. Enforcement is
// fail-open: when Redis is unavailable the request goes through.
type QuotaService struct {
	client *redis.Client
	window time.Duration
	limits map[string]int
	logger *logrus.Logger
}

func NewQuotaService(cfg *config.Config, client *redis.Client, logger *logrus.Logger) *QuotaService {
	window := cfg.Quota.Window
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &QuotaService{
		client: client,
		window: window,
		limits: cfg.Quota.Limits,
		logger: logger,
	}
}

func (s *QuotaService) limitFor(plan string) int {
	if limit, ok := s.limits[plan]; ok {
		return limit
	}
	return s.limits[models.PlanFree]
}

// Allow records the request under subject and reports whether it stays
// within the plan's window limit.
func (s *QuotaService) Allow(ctx context.Context, subject, plan string) bool {
	limit := s.limitFor(plan)
	if limit <= 0 {
		return true
	}

	key := fmt.Sprintf("quota:%s", subject)
	now := time.Now()
	windowStart := now.Add(-s.window)

	opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipe := s.client.Pipeline()
	pipe.ZRemRangeByScore(opCtx, key, "0", strconv.FormatInt(windowStart.Unix(), 10))
	countCmd := pipe.ZCard(opCtx, key)
	pipe.ZAdd(opCtx, key, redis.Z{
		Score:  float64(now.Unix()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(opCtx, key, s.window)

	if _, err := pipe.Exec(opCtx); err != nil {
		s.logger.WithError(err).Error("Failed to execute quota pipeline")
		return true
	}

	return countCmd.Val() < int64(limit)
}
