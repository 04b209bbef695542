package config

import (
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("RESTAURANT_TZ", "")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "8001", cfg.Port)
	assert.Equal(t, "cafe_comptoir", cfg.DBName)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "Europe/Paris", cfg.Location.String())
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, log.INFO, cfg.Level())
}

func TestParse_DriverRequirements(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGO_URL", "")
	_, err := Parse()
	assert.ErrorContains(t, err, "MONGO_URL")

	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	_, err = Parse()
	assert.NoError(t, err)

	t.Setenv("STORE_DRIVER", "mysql")
	t.Setenv("DB_USER", "")
	_, err = Parse()
	assert.ErrorContains(t, err, "DB_USER")

	t.Setenv("STORE_DRIVER", "couchdb")
	_, err = Parse()
	assert.ErrorContains(t, err, "couchdb")
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CORS_ORIGINS", "https://cafecomptoir.fr, https://www.cafecomptoir.fr")
	t.Setenv("RESTAURANT_TZ", "UTC")
	t.Setenv("NOTIFY_ENABLED", "yes")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cafecomptoir.fr", "https://www.cafecomptoir.fr"}, cfg.CORSOrigins)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.True(t, cfg.NotifyEnabled)
	assert.Equal(t, log.DEBUG, cfg.Level())

	t.Setenv("RESTAURANT_TZ", "Mars/Olympus")
	_, err = Parse()
	assert.Error(t, err)
}

func TestLoadRateLimitConfig_Clamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "10s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 50*time.Second, cfg.TTL)
	assert.Equal(t, "ip_route", cfg.KeyStrategy)
}
