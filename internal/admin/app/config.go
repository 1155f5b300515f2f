package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIToken string // Required: shared secret expected in the Authorization header

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./collab.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// ErrMissingAPIToken reports a startup without the shared secret
// configured; the service refuses to run an ungated API.
var ErrMissingAPIToken = errors.New("COLLAB_API_TOKEN is required")

func LoadConfig() (Config, error) {
	cfg := Config{
		APIToken:            os.Getenv("COLLAB_API_TOKEN"),
		DatabaseFile:        getEnvOrDefault("COLLAB_DATABASE_FILE", "collab.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.APIToken == "" {
		return Config{}, ErrMissingAPIToken
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
