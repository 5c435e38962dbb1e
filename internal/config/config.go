package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port        string
	Env         string
	DatabaseURL string // optional; snapshot persistence is disabled when empty
	GitHubToken string
	GitHubAPI   string

	// Analysis limits, handed to the pipeline at construction
	MaxEvents    int
	LookbackDays int

	// Dataset reuse windows
	CacheTTL    time.Duration
	SnapshotTTL time.Duration
}

// Load reads configuration from environment variables. The GitHub token is
// optional: without it the API still works, at unauthenticated rate limits.
func Load() (*Config, error) {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		GitHubAPI:   getEnv("GITHUB_API_URL", "https://api.github.com"),

		MaxEvents:    getInt("MAX_EVENTS", 300),
		LookbackDays: getInt("ANALYSIS_LOOKBACK_DAYS", 90),

		CacheTTL:    getDuration("CACHE_TTL", 5*time.Minute),
		SnapshotTTL: getDuration("SNAPSHOT_TTL", time.Hour),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
