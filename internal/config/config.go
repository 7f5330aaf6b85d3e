package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// FeedPaginationMode selects how the aggregated feed computes page slices.
// "memory" loads every category result set and slices the concatenation,
// matching the historical page-boundary behavior; "store" pushes a single
// sorted skip/limit pipeline into MongoDB.
const (
	FeedModeMemory = "memory"
	FeedModeStore  = "store"
)

type Config struct {
	ServiceName string `mapstructure:"SERVICE_NAME"`
	HTTPPort    string `mapstructure:"HTTP_PORT"`

	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	NATSURL string `mapstructure:"NATS_URL"`

	MinIOEndpoint  string `mapstructure:"MINIO_ENDPOINT"`
	MinIOAccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	MinIOSecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	MinIOBucket    string `mapstructure:"MINIO_BUCKET"`
	MinIOUseSSL    bool   `mapstructure:"MINIO_USE_SSL"`

	JWTSecret string `mapstructure:"JWT_SECRET"`

	PrometheusMetricsPort  string `mapstructure:"PROMETHEUS_METRICS_PORT"`
	OTExporterOTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	FeedPaginationMode string        `mapstructure:"FEED_PAGINATION_MODE"`
	ListingCacheTTL    time.Duration `mapstructure:"LISTING_CACHE_TTL"`
	SuggestionCacheTTL time.Duration `mapstructure:"SUGGESTION_CACHE_TTL"`
}

// Load reads configuration from environment variables. Defaults cover a
// local development setup; main loads .env beforehand via godotenv.
func Load() (*Config, error) {
	viper.SetDefault("SERVICE_NAME", "classifieds_service")
	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "classifieds")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("NATS_URL", "nats://localhost:4222")
	viper.SetDefault("MINIO_ENDPOINT", "localhost:9000")
	viper.SetDefault("MINIO_ACCESS_KEY", "minioadmin")
	viper.SetDefault("MINIO_SECRET_KEY", "minioadmin")
	viper.SetDefault("MINIO_BUCKET", "listing-images")
	viper.SetDefault("MINIO_USE_SSL", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("PROMETHEUS_METRICS_PORT", "9094")
	viper.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("FEED_PAGINATION_MODE", FeedModeMemory)
	viper.SetDefault("LISTING_CACHE_TTL", time.Hour)
	viper.SetDefault("SUGGESTION_CACHE_TTL", 5*time.Minute)

	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set; it is required")
	}
	if cfg.FeedPaginationMode != FeedModeMemory && cfg.FeedPaginationMode != FeedModeStore {
		return nil, fmt.Errorf("invalid FEED_PAGINATION_MODE %q (want %q or %q)",
			cfg.FeedPaginationMode, FeedModeMemory, FeedModeStore)
	}

	return &cfg, nil
}
