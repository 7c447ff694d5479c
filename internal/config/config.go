package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/dvdk01/uptimeobserver-status/internal/monitor"
	"github.com/dvdk01/uptimeobserver-status/internal/validator"
)

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	LogLevel log.Level
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}

	cfg := &Config{
		BaseURL: getEnv("UPTIMEOBSERVER_BASE_URL", monitor.DefaultBaseURL),
	}

	timeout, err := time.ParseDuration(getEnv("UPTIMEOBSERVER_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("parse UPTIMEOBSERVER_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("UPTIMEOBSERVER_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.Timeout = timeout

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if err := validator.NewResponseValidator().ValidateBaseURL(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid UPTIMEOBSERVER_BASE_URL %q: %w", cfg.BaseURL, err)
	}

	return cfg, nil
}

func getEnv(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}
