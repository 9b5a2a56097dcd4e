// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds the core runtime settings. Each field maps to an environment
// variable; the optional ones carry defaults.
type Config struct {
	Env  string // APP_ENV (dev, test, prod)
	Port string // APP_PORT

	DBUser            string        // DB_USER
	DBPass            string        // DB_PASS, empty allowed
	DBHost            string        // DB_HOST
	DBPort            string        // DB_PORT
	DBName            string        // DB_NAME
	DBMaxOpenConns    int           // DB_MAX_OPEN_CONNS
	DBConnMaxLifetime time.Duration // DB_CONN_MAX_LIFETIME
	MigrateOnStart    bool          // DB_MIGRATE_ON_START
	SeedOnStart       bool          // SEED_ON_START

	LogLevel      string // LOG_LEVEL
	LogFormatJSON bool   // LOG_FORMAT_JSON
	LogFile       string // LOG_FILE, empty logs to stdout only
	LogToStdout   bool   // LOG_TO_STDOUT

	MetricsEnabled   bool     // METRICS_ENABLED
	CORSAllowOrigins []string // CORS_ALLOW_ORIGINS, comma separated
}

// Load reads the configuration and exits the process when a required
// variable is missing.
func Load() Config {
	cfg, err := LoadFromEnv()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	return cfg
}

// LoadFromEnv is Load without the fatal exit.
func LoadFromEnv() (Config, error) {
	var missing []string
	must := func(key string) string {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg := Config{
		Env:  envStr("APP_ENV", "dev"),
		Port: envStr("APP_PORT", "8000"),

		DBUser:            must("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"),
		DBHost:            must("DB_HOST"),
		DBPort:            must("DB_PORT"),
		DBName:            must("DB_NAME"),
		DBMaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 25),
		DBConnMaxLifetime: envDur("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		MigrateOnStart:    envBool("DB_MIGRATE_ON_START", true),
		SeedOnStart:       envBool("SEED_ON_START", false),

		LogLevel:      envStr("LOG_LEVEL", "info"),
		LogFormatJSON: envBool("LOG_FORMAT_JSON", false),
		LogFile:       os.Getenv("LOG_FILE"),
		LogToStdout:   envBool("LOG_TO_STDOUT", true),

		MetricsEnabled:   envBool("METRICS_ENABLED", true),
		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS"),
	}
	if len(cfg.CORSAllowOrigins) == 0 {
		cfg.CORSAllowOrigins = []string{"*"}
	}
	if len(missing) > 0 {
		return cfg, fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

// IsProd reports whether the app runs in production.
func (c Config) IsProd() bool {
	return strings.EqualFold(c.Env, "prod") || strings.EqualFold(c.Env, "production")
}
