package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       int
	DatabaseDriver   string
	DatabaseURL      string
	LogLevel         slog.Level
	ShutdownTimeout  time.Duration
	DBConnectTimeout time.Duration
}

// Load reads the configuration from the environment, after loading a .env file if there is one.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	port, err := strconv.Atoi(getEnv("SERVER_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	driver := getEnv("DATABASE_DRIVER", "sqlite3")
	if driver != "sqlite3" && driver != "postgres" {
		return nil, fmt.Errorf("DATABASE_DRIVER must be sqlite3 or postgres, got %q", driver)
	}

	dsn := getEnv("DATABASE_URL", "")
	if dsn == "" {
		if driver == "postgres" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		dsn = "tournaments.db?_journal_mode=WAL&_busy_timeout=5000"
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
	}

	shutdownTimeout, err := getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	connectTimeout, err := getEnvAsDuration("DB_CONNECT_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:       port,
		DatabaseDriver:   driver,
		DatabaseURL:      dsn,
		LogLevel:         level,
		ShutdownTimeout:  shutdownTimeout,
		DBConnectTimeout: connectTimeout,
	}, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, value)
	}
	return value, nil
}
