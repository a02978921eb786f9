// Package config builds service configuration from environment variables so
// main stays lean.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures top-level service configuration.
type Server struct {
	Addr string

	// PostgresURL selects the SQL-backed stores. When empty, the service
	// runs on in-memory stores (tests, local development).
	PostgresURL string

	Redis RedisConfig
	Kafka KafkaConfig

	// AuditBuffer sizes the audit publisher inbox. Emissions beyond this
	// backlog are dropped with a warning rather than blocking callers.
	AuditBuffer int
}

// RedisConfig configures the optional alert-summary cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	SummaryTTL   time.Duration
}

// KafkaConfig configures the optional audit event sink.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr:        envOr("VIGIA_ADDR", ":8080"),
		PostgresURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			SummaryTTL:   envDurationOr("ALERT_SUMMARY_CACHE_TTL", 30*time.Second),
		},
		AuditBuffer: envIntOr("AUDIT_BUFFER", 256),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka = KafkaConfig{
			Brokers: strings.Split(brokers, ","),
			Topic:   envOr("KAFKA_AUDIT_TOPIC", "vigia.audit"),
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
