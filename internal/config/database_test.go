package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fleetcore/payments/internal/config"
)

func TestDatabaseConfigDSN(t *testing.T) {
	t.Run("uses configured ssl mode and timezone", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			Host:     "db.internal",
			Port:     5433,
			Name:     "payments",
			User:     "svc",
			Password: "secret",
			SSLMode:  "require",
			TimeZone: "UTC",
		}

		dsn := cfg.DSN()

		assert.Contains(t, dsn, "host=db.internal")
		assert.Contains(t, dsn, "port=5433")
		assert.Contains(t, dsn, "dbname=payments")
		assert.Contains(t, dsn, "sslmode=require")
		assert.Contains(t, dsn, "TimeZone=UTC")
	})

	t.Run("falls back to local defaults when unset", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			Host: "localhost",
			Port: 5432,
			Name: "payments",
			User: "svc",
		}

		dsn := cfg.DSN()

		assert.Contains(t, dsn, "sslmode=disable")
		assert.Contains(t, dsn, "TimeZone=Asia/Kuwait")
	})
}

func TestDatabaseConfigApplyPoolDefaults(t *testing.T) {
	t.Run("fills zero values", func(t *testing.T) {
		var cfg config.DatabaseConfig

		cfg.ApplyPoolDefaults()

		assert.Equal(t, 25, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
		assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
		assert.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
	})

	t.Run("keeps explicit settings", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			MaxOpenConns:    50,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
		}

		cfg.ApplyPoolDefaults()

		assert.Equal(t, 50, cfg.MaxOpenConns)
		assert.Equal(t, 10, cfg.MaxIdleConns)
		assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
		assert.Equal(t, 10*time.Minute, cfg.ConnMaxIdleTime)
	})
}
