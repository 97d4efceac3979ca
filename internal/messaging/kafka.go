// Package messaging publishes usage telemetry to Kafka. Events are
// fire-and-forget: a publish failure is logged by the caller and never
// affects the request that produced it.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/devtools-pro/backend/internal/config"
)

type UsageEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	Endpoint  string    `json:"endpoint"`
	Plan      string    `json:"plan,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type UsageProducer struct {
	writer *kafka.Writer
	logger *logrus.Logger
}

func NewUsageProducer(cfg *config.Config, logger *logrus.Logger) *UsageProducer {
	return &UsageProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers...),
			Topic:        cfg.Kafka.UsageTopic,
			Balancer:     &kafka.Hash{}, // key by user id so one account stays on one partition
			RequiredAcks: kafka.RequireOne,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
			BatchSize:    100,
		},
		logger: logger,
	}
}

func (p *UsageProducer) PublishUsage(ctx context.Context, event UsageEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal usage event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "endpoint", Value: []byte(event.Endpoint)},
			{Key: "timestamp", Value: []byte(event.Timestamp.Format(time.RFC3339))},
		},
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, message); err != nil {
		return fmt.Errorf("failed to write usage event to Kafka: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"user_id":  event.UserID,
		"endpoint": event.Endpoint,
	}).Debug("Usage event published")

	return nil
}

func (p *UsageProducer) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close usage producer: %w", err)
	}
	return nil
}
