package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API  APIConfig
	Auth AuthConfig
	Log  LogConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AuthConfig struct {
	AccessToken string // used when TokenEnvKey is empty
	TokenEnvKey string // read the token from this variable on every submit
	CheckExpiry bool
	Leeway      time.Duration
}

type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		API: APIConfig{
			BaseURL: getEnv("EVENTS_API_BASE_URL", "http://localhost:8080"),
			Timeout: getEnvAsDuration("EVENTS_API_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			AccessToken: getEnv("EVENTS_ACCESS_TOKEN", ""),
			TokenEnvKey: getEnv("EVENTS_TOKEN_ENV_KEY", ""),
			CheckExpiry: getEnvAsBool("EVENTS_TOKEN_CHECK_EXPIRY", true),
			Leeway:      getEnvAsDuration("EVENTS_TOKEN_LEEWAY", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
