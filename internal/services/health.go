package services

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/database"
)

type HealthService struct {
	logger *logrus.Logger
	db     *database.Database

	healthCheckStatus *prometheus.GaugeVec
	lastHealthCheck   *prometheus.GaugeVec
}

// HealthStatus mirrors the liveness payload of the public /health
// endpoint.
type HealthStatus struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Redis     string    `json:"redis"`
	Timestamp time.Time `json:"timestamp"`
}

func NewHealthService(logger *logrus.Logger, db *database.Database) *HealthService {
	hs := &HealthService{
		logger: logger,
		db:     db,
	}

	hs.healthCheckStatus = registerCollector(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "health_check_status",
		Help: "Health check status (1 = healthy, 0 = unhealthy)",
	}, []string{"service"}), logger)

	hs.lastHealthCheck = registerCollector(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "health_check_timestamp",
		Help: "Timestamp of last health check",
	}, []string{"service"}), logger)

	return hs
}

// CheckHealth pings both stores. PostgreSQL is the critical
// dependency; a Redis outage degrades caching and quotas but the
// service keeps answering.
func (s *HealthService) CheckHealth() *HealthStatus {
	status := &HealthStatus{
		Status:    "ok",
		Database:  "connected",
		Redis:     "connected",
		Timestamp: time.Now(),
	}

	if err := s.checkPostgreSQL(); err != nil {
		s.logger.WithError(err).Error("PostgreSQL health check failed")
		status.Status = "error"
		status.Database = "disconnected"
		s.updateMetrics("postgresql", false)
	} else {
		s.updateMetrics("postgresql", true)
	}

	if err := s.checkRedis(); err != nil {
		s.logger.WithError(err).Warn("Redis health check failed")
		status.Redis = "disconnected"
		s.updateMetrics("redis", false)
	} else {
		s.updateMetrics("redis", true)
	}

	return status
}

func (s *HealthService) checkPostgreSQL() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.db.PG.Ping(ctx)
}

func (s *HealthService) checkRedis() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.db.Redis.Ping(ctx).Err()
}

func (s *HealthService) updateMetrics(service string, healthy bool) {
	value := 0.0
	if healthy {
		value = 1.0
	}
	s.healthCheckStatus.WithLabelValues(service).Set(value)
	s.lastHealthCheck.WithLabelValues(service).Set(float64(time.Now().Unix()))
}
