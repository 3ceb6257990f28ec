package config

import (
	"fmt"
	"os"
	"strings" // For LogLevel normalization

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultLogLevel      = "debug"
	defaultEnvironment   = "development"
	defaultRetrySchedule = "@every 10m" // 600 seconds between polls
)

// ErrConfiguration is returned when required settings are missing or invalid.
var ErrConfiguration = fmt.Errorf("configuration error")

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string `yaml:"practicum_token"`
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID string `yaml:"telegram_chat_id"`
	LogLevel       string `yaml:"log_level"`
	Environment    string `yaml:"environment"`
	RetrySchedule  string `yaml:"retry_schedule"` // "@every <duration>" pause between polls
}

// Load reads configuration from environment variables and .env file (if present).
// Missing secrets are not an error here; call Validate once logging is set up.
func Load() *AppConfig {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}

	cfg.RetrySchedule = os.Getenv("RETRY_SCHEDULE")
	if cfg.RetrySchedule == "" {
		cfg.RetrySchedule = defaultRetrySchedule
	}

	return cfg
}

// MissingSecrets returns the names of the required variables that are empty,
// in declaration order.
func (c *AppConfig) MissingSecrets() []string {
	required := []struct {
		name  string
		value string
	}{
		{"PRACTICUM_TOKEN", c.PracticumToken},
		{"TELEGRAM_TOKEN", c.TelegramToken},
		{"TELEGRAM_CHAT_ID", c.TelegramChatID},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	return missing
}

// Validate checks that every required secret is set. Each missing variable is
// logged on its own; the returned error names all of them.
func (c *AppConfig) Validate(log logrus.FieldLogger) error {
	missing := c.MissingSecrets()
	if len(missing) == 0 {
		log.Debug("All required environment variables are set")
		return nil
	}

	for _, name := range missing {
		log.WithField("variable", name).Error("Required environment variable is missing")
	}
	return fmt.Errorf("%w: missing environment variables: %s", ErrConfiguration, strings.Join(missing, ", "))
}

// Redacted returns a copy safe to print: secrets are masked.
func (c *AppConfig) Redacted() AppConfig {
	out := *c
	out.PracticumToken = mask(c.PracticumToken)
	out.TelegramToken = mask(c.TelegramToken)
	return out
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
