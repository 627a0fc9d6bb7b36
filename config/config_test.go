package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	for _, k := range []string{"DB_DRIVER", "SQLITE_PATH", "DATABASE_URL", "MYSQL_URL", "DB_HOST", "DB_PORT",
		"DB_USER", "DB_PASS", "DB_NAME", "HTTP_ADDR", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "DB_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, _, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "hotel.db", cfg.SQLitePath)
	assert.Equal(t, "127.0.0.1", cfg.DBHost)
	assert.Equal(t, "root", cfg.DBUser)
	assert.Equal(t, "hotel_db", cfg.DBName)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTPAddr)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.DBLogLevel)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("DB_DRIVER", " MySQL ")
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_NAME", "front_desk")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9090")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, ,wails://wails")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, _, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, "db.local", cfg.DBHost)
	assert.Equal(t, "front_desk", cfg.DBName)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPAddr)
	assert.Equal(t, []string{"http://localhost:5173", "wails://wails"}, cfg.CorsOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
}
