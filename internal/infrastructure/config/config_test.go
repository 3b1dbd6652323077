package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := fromLookuper(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 1500*time.Millisecond, cfg.Export.ExportLatency)
	assert.Equal(t, time.Second, cfg.Export.ScheduleLatency)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.WarmOnStart)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestOverrides(t *testing.T) {
	cfg, err := fromLookuper(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORE_DRIVER":    "redis",
		"REDIS_ADDR":      "cache:6379",
		"REDIS_DB":        "2",
		"EXPORT_LATENCY":  "0s",
		"SEED":            "42",
		"ENV":             "production",
		"EXPORT_BASE_URL": "https://files.example.com",
	}))
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.StoreDriver)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Zero(t, cfg.Export.ExportLatency)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "https://files.example.com", cfg.Export.BaseURL)
}

func TestUnknownDriver(t *testing.T) {
	_, err := fromLookuper(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORE_DRIVER": "sqlite",
	}))
	assert.Error(t, err)
}

func TestBadTimezone(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus"}
	_, err := cfg.Location()
	assert.Error(t, err)
}
