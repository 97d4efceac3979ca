package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)

	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "usage-events", cfg.Kafka.UsageTopic)

	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)

	assert.Equal(t, 24*time.Hour, cfg.Quota.Window)
	assert.Equal(t, 3, cfg.Quota.Limits["free"])
	assert.Equal(t, 0, cfg.Quota.Limits["pro"])
	assert.Equal(t, 0, cfg.Quota.Limits["enterprise"])

	assert.Equal(t, "gpt-4", cfg.Completion.Model)
	assert.Equal(t, 60*time.Second, cfg.Completion.Timeout)

	assert.Equal(t, 24*time.Hour, cfg.Cache.CodeTTL)
	assert.Equal(t, time.Hour, cfg.Cache.DocsTTL)
	assert.Equal(t, 262144, cfg.Cache.MaxEntrySize)
}
