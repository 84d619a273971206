package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "stockroom.db", cfg.DB.DSN)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "Abroad", cfg.Seed.LocationName)
	assert.True(t, cfg.App.IsDev())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STOCKROOM_APP_ENV", "production")
	t.Setenv("STOCKROOM_HTTP_PORT", "9000")
	t.Setenv("STOCKROOM_DB_DRIVER", "Postgres")
	t.Setenv("STOCKROOM_DB_DSN", "host=db user=stock dbname=stock sslmode=disable")
	t.Setenv("STOCKROOM_DB_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.App.IsDev())
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STOCKROOM_DB_DRIVER", "oracle")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}
