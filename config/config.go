package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type App struct {
	// Store
	DBDriver    string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"hotel.db"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	MySQLURL    string `envconfig:"MYSQL_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort      string `envconfig:"DB_PORT"`
	DBUser      string `envconfig:"DB_USER" default:"root"`
	DBPass      string `envconfig:"DB_PASS"`
	DBName      string `envconfig:"DB_NAME" default:"hotel_db"`
	DBLogLevel  string `envconfig:"DB_LOG_LEVEL" default:"warn"`

	// Presentation adapter
	HTTPAddr    string   `envconfig:"HTTP_ADDR" default:"127.0.0.1:8080"`
	CorsOrigins []string `envconfig:"CORS_ORIGINS"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// Load reads .env when present and then the process environment.
// A missing .env is not an error; the returned bool reports whether one was loaded.
func Load() (App, bool, error) {
	loaded := godotenv.Load() == nil

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, loaded, err
	}
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	c.CorsOrigins = cleanOrigins(c.CorsOrigins)
	return c, loaded, nil
}

func cleanOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, part := range raw {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
