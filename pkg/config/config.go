package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Config holds all application settings, loaded from the environment
type Config struct {
	Port        string
	Environment string

	Database DatabaseConfig

	JWTSecret     string
	TokenDuration time.Duration

	KafkaBrokers []string
	RedisAddr    string
}

// Load reads configuration from the environment, with an optional .env file
func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	tokenMinutes := getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)

	return &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "smart_stock"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-keep-it-secret"),
		TokenDuration: time.Duration(tokenMinutes) * time.Minute,
		KafkaBrokers:  getEnvList("KAFKA_BROKERS", nil),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
	}
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
