package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPracticumEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultTelegramAPIURL    = "https://api.telegram.org"
	DefaultPollSchedule      = "@every 600s"
)

// ErrMissingVariable is returned when a required credential is not set.
var ErrMissingVariable = errors.New("required environment variable is not set")

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatID    string
	PracticumEndpoint string
	PracticumTimeout  time.Duration
	TelegramAPIURL    string
	PollSchedule      string // robfig/cron spec, e.g. "@every 600s"
	LogLevel          string
	Environment       string
	LogFile           string
	LogMaxSizeMB      int
	LogMaxBackups     int
}

// Load reads configuration from environment variables and .env file (if present).
// Credentials are not validated here; call CheckTokens once logging is set up.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")),
	}
	var err error

	cfg.PracticumEndpoint = getenvDefault("PRACTICUM_ENDPOINT", DefaultPracticumEndpoint)
	cfg.TelegramAPIURL = strings.TrimRight(getenvDefault("TELEGRAM_API_URL", DefaultTelegramAPIURL), "/")
	cfg.PollSchedule = getenvDefault("POLL_SCHEDULE", DefaultPollSchedule)

	cfg.PracticumTimeout, err = time.ParseDuration(getenvDefault("PRACTICUM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRACTICUM_TIMEOUT: %w", err)
	}

	cfg.LogLevel = strings.ToLower(getenvDefault("LOG_LEVEL", "debug"))
	cfg.Environment = strings.ToLower(getenvDefault("ENVIRONMENT", "development"))
	cfg.LogFile = getenvDefault("LOG_FILE", "logs.log")

	cfg.LogMaxSizeMB, err = strconv.Atoi(getenvDefault("LOG_MAX_SIZE_MB", "50"))
	if err != nil || cfg.LogMaxSizeMB <= 0 {
		return nil, fmt.Errorf("invalid LOG_MAX_SIZE_MB: %q", os.Getenv("LOG_MAX_SIZE_MB"))
	}

	cfg.LogMaxBackups, err = strconv.Atoi(getenvDefault("LOG_MAX_BACKUPS", "5"))
	if err != nil || cfg.LogMaxBackups < 0 {
		return nil, fmt.Errorf("invalid LOG_MAX_BACKUPS: %q", os.Getenv("LOG_MAX_BACKUPS"))
	}

	return cfg, nil
}

// CheckTokens reports every required credential that is empty.
func (c *AppConfig) CheckTokens() error {
	required := []struct {
		name  string
		value string
	}{
		{"PRACTICUM_TOKEN", c.PracticumToken},
		{"TELEGRAM_TOKEN", c.TelegramToken},
		{"TELEGRAM_CHAT_ID", c.TelegramChatID},
	}

	var errs []error
	for _, v := range required {
		if v.value == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingVariable, v.name))
		}
	}
	return errors.Join(errs...)
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
