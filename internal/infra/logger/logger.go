// internal/infra/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"homework_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

const fallbackLevel = logrus.DebugLevel

// Log is the process-wide logger.
var Log = logrus.New()

// Init points the global logger at stdout and applies cfg.
func Init(cfg *config.AppConfig) {
	Configure(Log, os.Stdout, cfg)
}

// Configure applies level, formatter and output to l. An unknown level
// falls back to debug, the bot's default verbosity.
func Configure(l *logrus.Logger, out io.Writer, cfg *config.AppConfig) {
	l.SetOutput(out)
	l.SetFormatter(formatterFor(cfg.Environment))

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = fallbackLevel
	}
	l.SetLevel(level)
	if err != nil {
		l.WithError(err).Warnf("Unknown LOG_LEVEL %q, using %s", cfg.LogLevel, fallbackLevel)
	}
}

// formatterFor picks JSON for deployed environments and plain text elsewhere.
func formatterFor(environment string) logrus.Formatter {
	switch strings.ToLower(environment) {
	case "production", "staging":
		return &logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano}
	default:
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.DateTime}
	}
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
