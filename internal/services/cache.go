package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/config"
)

// registerCollector registers c with the default registry. When an
// equal collector is already registered the existing one is returned,
// so repeated construction never ends up incrementing an orphan.
func registerCollector[C prometheus.Collector](c C, logger *logrus.Logger) C {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		logger.WithError(err).Warn("Failed to register metric")
	}
	return c
}

// CacheKey derives a content-stable cache key: a hash over the
// endpoint name and the normalized request inputs, nothing else. Keys
// must never embed wall-clock time or the cache degrades to
// write-only.
func CacheKey(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return "cache:" + hex.EncodeToString(sum[:])
}

// ResponseCache is the read-through/write-through string cache in
// front of the completion service. Lookups and writes are best-effort:
// a Redis failure is logged and treated as a miss, never surfaced.
type ResponseCache struct {
	client       *redis.Client
	maxEntrySize int
	logger       *logrus.Logger

	hits   prometheus.Counter
	misses prometheus.Counter
}

func NewResponseCache(client *redis.Client, cfg config.CacheConfig, logger *logrus.Logger) *ResponseCache {
	return &ResponseCache{
		client:       client,
		maxEntrySize: cfg.MaxEntrySize,
		logger:       logger,
		hits: registerCollector(prometheus.NewCounter(prometheus.CounterOpts{
			Name: "response_cache_hits_total",
			Help: "Number of response cache hits",
		}), logger),
		misses: registerCollector(prometheus.NewCounter(prometheus.CounterOpts{
			Name: "response_cache_misses_total",
			Help: "Number of response cache misses",
		}), logger),
	}
}

func (c *ResponseCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Warn("Cache lookup failed")
		}
		c.misses.Inc()
		return "", false
	}
	c.hits.Inc()
	return value, true
}

func (c *ResponseCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c.maxEntrySize > 0 && len(value) > c.maxEntrySize {
		c.logger.WithFields(logrus.Fields{
			"size":     len(value),
			"max_size": c.maxEntrySize,
		}).Debug("Response too large to cache")
		return
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("cache_key", key).Warn("Failed to cache response")
	}
}
