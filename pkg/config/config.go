package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds the core runtime configuration for a service instance.
// It supports environment-based initialization, with sensible defaults.
type Config struct {
	ServiceName string // e.g. "stock-quote"
	Env         string // e.g. "dev", "uat", "prod"
	LogLevel    string // "debug", "info", etc.
	Port        int    // service HTTP port

	ProviderBaseURL string        // quote-data provider base URL
	ProviderTimeout time.Duration // per-lookup HTTP timeout
}

// Load loads configuration from environment variables and .env file if present.
func Load() *Config {
	// load .env silently (no error if missing)
	_ = godotenv.Load()

	return &Config{
		ServiceName:     GetEnv("SERVICE_NAME", "stock-quote"),
		Env:             GetEnv("ENV", "dev"),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		Port:            GetEnvInt("PORT", 8080),
		ProviderBaseURL: GetEnv("PROVIDER_BASE_URL", "https://query1.finance.yahoo.com"),
		ProviderTimeout: GetEnvDuration("PROVIDER_TIMEOUT", 10*time.Second),
	}
}
