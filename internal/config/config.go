package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string

	DatabaseURL string
	RedisURL    string

	SweepSchedule   string
	CleanupSchedule string
	AlertRetention  time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		SweepSchedule:   getEnv("INACTIVITY_SWEEP_SCHEDULE", "0 8 * * *"),
		CleanupSchedule: getEnv("ALERT_CLEANUP_SCHEDULE", "30 3 * * *"),
	}

	var err error
	cfg.AlertRetention, err = parseDuration(getEnv("ALERT_RETENTION", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALERT_RETENTION: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
