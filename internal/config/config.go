package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Addr      string // TEMPLE_ADDR, default ":8080"
	DBPath    string // TEMPLE_DB, default "temple.db"
	AuthToken string // TEMPLE_AUTH_TOKEN, optional
	LogLevel  string // TEMPLE_LOG_LEVEL, default "info"
	Env       string // TEMPLE_ENV, default "development"
}

// Load reads configuration from the environment. Variables found in the
// given dotenv files (".env" when none are named) fill in whatever the
// environment leaves unset; a missing file is not an error.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)

	return Config{
		Addr:      envOr("TEMPLE_ADDR", ":8080"),
		DBPath:    envOr("TEMPLE_DB", "temple.db"),
		AuthToken: os.Getenv("TEMPLE_AUTH_TOKEN"),
		LogLevel:  envOr("TEMPLE_LOG_LEVEL", "info"),
		Env:       envOr("TEMPLE_ENV", "development"),
	}
}

// Production reports whether TEMPLE_ENV is "production".
func (c Config) Production() bool {
	return c.Env == "production"
}

// Fields describes the configuration for the startup log line. The auth
// token is reported as set or unset only.
func (c Config) Fields() []zap.Field {
	return []zap.Field{
		zap.String("addr", c.Addr),
		zap.String("db", c.DBPath),
		zap.Bool("auth", c.AuthToken != ""),
		zap.String("log_level", c.LogLevel),
		zap.String("env", c.Env),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
