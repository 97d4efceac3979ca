package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Quota      QuotaConfig      `mapstructure:"quota"`
	Completion CompletionConfig `mapstructure:"completion"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Security   SecurityConfig   `mapstructure:"security"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	URL            string        `mapstructure:"url"`
	MaxConnections int           `mapstructure:"max_connections"`
	MaxIdleTime    time.Duration `mapstructure:"max_idle_time"`
	MaxLifetime    time.Duration `mapstructure:"max_lifetime"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type RedisConfig struct {
	URL        string        `mapstructure:"url"`
	MaxRetries int           `mapstructure:"max_retries"`
	PoolSize   int           `mapstructure:"pool_size"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type KafkaConfig struct {
	Brokers    []string `mapstructure:"brokers"`
	UsageTopic string   `mapstructure:"usage_topic"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// QuotaConfig bounds generations per plan inside a sliding window.
// A limit of 0 means unlimited.
type QuotaConfig struct {
	Window time.Duration  `mapstructure:"window"`
	Limits map[string]int `mapstructure:"limits"`
}

type CompletionConfig struct {
	Endpoint   string        `mapstructure:"endpoint"`
	APIKey     string        `mapstructure:"api_key"`
	Model      string        `mapstructure:"model"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
}

type CacheConfig struct {
	CodeTTL      time.Duration `mapstructure:"code_ttl"`
	TemplateTTL  time.Duration `mapstructure:"template_ttl"`
	DocsTTL      time.Duration `mapstructure:"docs_ttl"`
	TestsTTL     time.Duration `mapstructure:"tests_ttl"`
	MaxEntrySize int           `mapstructure:"max_entry_size"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SecurityConfig struct {
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

func Load() (*Config, error) {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, continue with env vars and defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", "3001")
	viper.SetDefault("server.mode", "development")

	// Database defaults
	viper.SetDefault("database.url", "postgres://postgres@localhost:5432/devtools_pro")
	viper.SetDefault("database.max_connections", 25)
	viper.SetDefault("database.max_idle_time", "15m")
	viper.SetDefault("database.max_lifetime", "1h")
	viper.SetDefault("database.connect_timeout", "10s")

	// Redis defaults
	viper.SetDefault("redis.url", "localhost:6379")
	viper.SetDefault("redis.max_retries", 3)
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.timeout", "5s")

	// Kafka defaults
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.usage_topic", "usage-events")

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "your-secret-key")
	viper.SetDefault("auth.token_ttl", "168h")

	// Quota defaults
	viper.SetDefault("quota.window", "24h")
	viper.SetDefault("quota.limits.free", 3)
	viper.SetDefault("quota.limits.pro", 0)
	viper.SetDefault("quota.limits.enterprise", 0)

	// Completion service defaults
	viper.SetDefault("completion.endpoint", "https://api.openai.com/v1/chat/completions")
	viper.SetDefault("completion.model", "gpt-4")
	viper.SetDefault("completion.timeout", "60s")
	viper.SetDefault("completion.max_retries", 1)

	// Cache defaults
	viper.SetDefault("cache.code_ttl", "24h")
	viper.SetDefault("cache.template_ttl", "24h")
	viper.SetDefault("cache.docs_ttl", "1h")
	viper.SetDefault("cache.tests_ttl", "1h")
	viper.SetDefault("cache.max_entry_size", 262144)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// Security defaults
	viper.SetDefault("security.cors.allowed_origins", []string{"*"})
	viper.SetDefault("security.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors.allowed_headers", []string{"*"})
}
