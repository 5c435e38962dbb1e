package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "DATABASE_URL", "GITHUB_TOKEN", "GITHUB_API_URL",
		"MAX_EVENTS", "ANALYSIS_LOOKBACK_DAYS", "CACHE_TTL", "SNAPSHOT_TTL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "https://api.github.com", cfg.GitHubAPI)
	assert.Equal(t, 300, cfg.MaxEvents)
	assert.Equal(t, 90, cfg.LookbackDays)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, time.Hour, cfg.SnapshotTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_EVENTS", "100")
	t.Setenv("ANALYSIS_LOOKBACK_DAYS", "30")
	t.Setenv("SNAPSHOT_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 100, cfg.MaxEvents)
	assert.Equal(t, 30, cfg.LookbackDays)
	assert.Equal(t, 15*time.Minute, cfg.SnapshotTTL)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_EVENTS", "not-a-number")
	t.Setenv("ANALYSIS_LOOKBACK_DAYS", "-5")
	t.Setenv("CACHE_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.MaxEvents)
	assert.Equal(t, 90, cfg.LookbackDays)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}
