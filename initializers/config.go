package initializers

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const (
	defaultPort       = "3000"
	defaultAPIURL     = "http://localhost:8080"
	defaultAPITimeout = 10 * time.Second
)

type Config struct {
	Port       string
	APIURL     string
	APIToken   string
	APITimeout time.Duration
	LogLevel   log.Level
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:       getEnv("PORT", defaultPort),
		APIURL:     strings.TrimRight(getEnv("PGAPEX_API_URL", defaultAPIURL), "/"),
		APIToken:   os.Getenv("PGAPEX_API_TOKEN"),
		APITimeout: defaultAPITimeout,
		LogLevel:   log.LevelInfo,
	}

	if raw := os.Getenv("PGAPEX_API_TIMEOUT"); raw != "" {
		timeout, err := cast.ToDurationE(raw)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid PGAPEX_API_TIMEOUT %q", raw)
		}
		if timeout <= 0 {
			return Config{}, errors.Errorf("PGAPEX_API_TIMEOUT must be positive, got %s", timeout)
		}
		cfg.APITimeout = timeout
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := parseLogLevel(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}

	if _, err := cast.ToIntE(cfg.Port); err != nil {
		return Config{}, errors.Wrapf(err, "invalid PORT %q", cfg.Port)
	}

	return cfg, nil
}

func parseLogLevel(raw string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, errors.Errorf("invalid LOG_LEVEL %q", raw)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
