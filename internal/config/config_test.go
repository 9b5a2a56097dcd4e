package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDBEnv(t *testing.T) {
	t.Setenv("DB_USER", "fit")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "fitness")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	setDBEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	assert.True(t, cfg.MigrateOnStart)
	assert.False(t, cfg.SeedOnStart)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.IsProd())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	setDBEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SEED_ON_START", "yes")
	t.Setenv("LOG_FORMAT_JSON", "1")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.SeedOnStart)
	assert.True(t, cfg.LogFormatJSON)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
}

func TestLoadFromEnv_MissingRequired(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "fitness")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.NotContains(t, err.Error(), "DB_HOST")
}

func TestLoadRateLimitConfig_Normalizes(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 2*time.Second, cfg.RefillInterval)
	assert.Equal(t, 10*time.Second, cfg.TTL)
	assert.Equal(t, "ip_route", cfg.KeyStrategy)
}

func TestLoadRateLimitConfig_BurstAndEvery(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "500ms")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 5, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, 500*time.Millisecond, cfg.RefillInterval)
}

func TestLoadCacheConfig(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "bogus")

	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, cfg.Methods)
	assert.Equal(t, 5*time.Minute, cfg.TTL)
	assert.Equal(t, "catalog", cfg.Prefix)
}

func TestLoadQueueConfig_URLPrecedence(t *testing.T) {
	t.Setenv("AMQP_URL", "amqp://amqp-host/")
	assert.Equal(t, "amqp://amqp-host/", LoadQueueConfig().URL)

	t.Setenv("RABBITMQ_URL", "amqp://rabbit-host/")
	cfg := LoadQueueConfig()
	assert.Equal(t, "amqp://rabbit-host/", cfg.URL)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "workout.activity", cfg.Queue)
}

func TestLoadRedisConfig(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	assert.Equal(t, "cache:6380", LoadRedisConfig().Addr)

	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6379")
	assert.Equal(t, "redis:6379", LoadRedisConfig().Addr)
}

func TestLoadGeneratorConfig(t *testing.T) {
	t.Setenv("GENERATOR_MAX_EXERCISES", "6")
	cfg := LoadGeneratorConfig()
	assert.Equal(t, 45, cfg.DefaultDurationMinutes)
	assert.Equal(t, 6, cfg.MaxExercises)
}
