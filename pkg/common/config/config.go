package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	ServerHost      string
	RiskServicePort string
	AnalyticsPort   string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Database
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Kafka
	KafkaBrokers         []string
	KafkaGroupID         string
	AssessmentEventTopic string

	// OIDC (optional; auth middleware is disabled when unset)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string

	// Model registry
	ModelConfigPath string

	// Analytics
	SurvivalCurveCacheTTL time.Duration
	MaxCurveDays          int
}

func Load() *Config {
	return &Config{
		ServerHost:      getEnv("SERVER_HOST", "0.0.0.0"),
		RiskServicePort: getEnv("RISK_SERVICE_PORT", "8090"),
		AnalyticsPort:   getEnv("ANALYTICS_SERVICE_PORT", "8091"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "carepath"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "carepath123"),
		PostgresDB:       getEnv("POSTGRES_DB", "readmission"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),

		KafkaBrokers:         getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaGroupID:         getEnv("KAFKA_GROUP_ID", "readmission-platform"),
		AssessmentEventTopic: getEnv("ASSESSMENT_EVENT_TOPIC", "risk.assessments"),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),

		ModelConfigPath: getEnv("MODEL_CONFIG_PATH", ""),

		SurvivalCurveCacheTTL: getDuration("SURVIVAL_CURVE_CACHE_TTL", 10*time.Minute),
		MaxCurveDays:          getIntEnv("MAX_CURVE_DAYS", 365),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return []string{value}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
