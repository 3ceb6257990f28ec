package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"homework_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

func TestConfigure_Level(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"ERROR", logrus.ErrorLevel},
		{"nonsense", logrus.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := logrus.New()
			Configure(l, &bytes.Buffer{}, &config.AppConfig{LogLevel: tt.level})
			if l.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestConfigure_ProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	Configure(l, &buf, &config.AppConfig{LogLevel: "info", Environment: "production"})

	l.WithField("cycle_id", "x").Info("poll finished")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "poll finished" || entry["level"] != "info" || entry["time"] == nil {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestConfigure_DevelopmentUsesText(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	Configure(l, &buf, &config.AppConfig{LogLevel: "info", Environment: "development"})

	l.Error("boom")

	out := buf.String()
	if !strings.Contains(out, "level=error") || !strings.Contains(out, "msg=boom") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestConfigure_UnknownLevelWarnsWithFallback(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	Configure(l, &buf, &config.AppConfig{LogLevel: "loud"})

	out := buf.String()
	if !strings.Contains(out, "level=warning") || !strings.Contains(out, "using debug") {
		t.Errorf("expected a warning naming the debug fallback, got %q", out)
	}
	if l.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", l.GetLevel())
	}
}
