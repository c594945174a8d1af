package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API APIConfig
	App AppConfig
}

type APIConfig struct {
	BaseURL        string
	Timeout        time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// AppConfig holds application configuration
type AppConfig struct {
	Timezone    string
	TokenPath   string
	SnapshotTTL time.Duration
	LogLevel    string
}

func Load() (*Config, error) {
	// .env is optional for a CLI; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	timeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	rps, err := strconv.ParseFloat(getEnv("API_RATE_LIMIT_RPS", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_LIMIT_RPS: %w", err)
	}

	burst, err := strconv.Atoi(getEnv("API_RATE_LIMIT_BURST", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_RATE_LIMIT_BURST: %w", err)
	}

	config.API = APIConfig{
		BaseURL:        getEnv("API_BASE_URL", ""),
		Timeout:        timeout,
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}

	snapshotTTL, err := time.ParseDuration(getEnv("SNAPSHOT_CACHE_TTL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_CACHE_TTL: %w", err)
	}

	config.App = AppConfig{
		Timezone:    getEnv("APP_TIMEZONE", "Asia/Ho_Chi_Minh"),
		TokenPath:   getEnv("TOKEN_PATH", defaultTokenPath()),
		SnapshotTTL: snapshotTTL,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.API.RateLimitRPS <= 0 {
		return fmt.Errorf("API_RATE_LIMIT_RPS must be positive")
	}
	if c.App.TokenPath == "" {
		return fmt.Errorf("TOKEN_PATH is required")
	}
	return nil
}

// Location resolves the configured timezone, falling back to UTC when
// the zone database does not know it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "chamcong-session.json"
	}
	return filepath.Join(home, ".chamcong", "session.json")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
