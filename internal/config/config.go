package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string
	HTTPAddr        string
	LogLevel        string
	Env             string // dev|prod
	SentryDSN       string
	Release         string
	Location        *time.Location
	ShutdownTimeout time.Duration
}

// Load reads the environment, after merging an optional .env file from the
// working directory. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf(".env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}

	dsn := getenv("DATABASE_URL")
	if dsn == "" {
		return nil, errors.New("required env DATABASE_URL is empty")
	}

	loc, err := time.LoadLocation(get("TZ", "Asia/Kolkata"))
	if err != nil {
		loc = time.Local
	}

	shutdown, err := time.ParseDuration(get("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	return &Config{
		DatabaseURL:     dsn,
		HTTPAddr:        get("HTTP_ADDR", ":8080"),
		LogLevel:        get("LOG_LEVEL", "info"),
		Env:             get("ENV", "dev"),
		SentryDSN:       getenv("SENTRY_DSN"),
		Release:         getenv("RELEASE"),
		Location:        loc,
		ShutdownTimeout: shutdown,
	}, nil
}
