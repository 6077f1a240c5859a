package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"grand-azure-hotel/utils"
)

// Config holds all runtime settings, read from the environment (and .env).
type Config struct {
	// App
	Environment string
	LogLevel    string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CorsOrigins  []string

	// Storage
	DBDriver string // mysql | postgres | memory
	RedisURL string

	// Domain
	SeedData               bool
	AvailabilityWindowDays int
	EnforceCapacity        bool

	SMTP utils.SMTPConfig
}

// Load reads .env if present and returns the config with defaults applied.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 10)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 20)) * time.Second,
		CorsOrigins:  parseCorsOrigins(os.Getenv("CORS_ORIGINS")),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		RedisURL: getEnv("REDIS_URL", ""),

		SeedData:               getEnvAsBool("SEED_DATA", true),
		AvailabilityWindowDays: getEnvAsInt("AVAILABILITY_WINDOW_DAYS", 90),
		EnforceCapacity:        getEnvAsBool("ENFORCE_CAPACITY", true),

		SMTP: utils.SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			FromName: getEnv("SMTP_FROM_NAME", "Grand Azure Hotel"),
		},
	}
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
