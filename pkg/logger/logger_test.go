package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wonny/ohaeng/backend/pkg/config"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return &Logger{zlog: zerolog.New(buf).With().Timestamp().Logger()}
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log output: %v (%q)", err, buf.String())
	}
	return entry
}

func TestNewSetsGlobalLevel(t *testing.T) {
	tests := []struct {
		level     string
		wantLevel zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&config.Config{Env: "development", LogLevel: tt.level, LogFormat: "json"}, &buf)
			if log == nil {
				t.Fatal("Expected logger to be created")
			}

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("Expected global level %v, got %v", tt.wantLevel, zerolog.GlobalLevel())
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"invalid", zerolog.InfoLevel}, // Default
		{"", zerolog.InfoLevel},        // Default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	tests := []struct {
		name      string
		logFunc   func()
		wantMsg   string
		wantLevel string
	}{
		{"debug", func() { log.Debug("daily fortune cache miss") }, "daily fortune cache miss", "debug"},
		{"info", func() { log.Info("precompute finished") }, "precompute finished", "info"},
		{"warn", func() { log.Warn("redis disabled") }, "redis disabled", "warn"},
		{"error", func() { log.Error("save failed") }, "save failed", "error"},
		{"infof", func() { log.Infof("generated %d records", 12) }, "generated 12 records", "info"},
		{"warnf", func() { log.Warnf("retry attempt: %d", 3) }, "retry attempt: 3", "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc()

			entry := decodeEntry(t, &buf)
			if entry["level"] != tt.wantLevel {
				t.Errorf("Expected level %q, got %q", tt.wantLevel, entry["level"])
			}
			if entry["message"] != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, entry["message"])
			}
		})
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.Component("fortune.generator").Info("generated")

	entry := decodeEntry(t, &buf)
	if entry["component"] != "fortune.generator" {
		t.Errorf("Expected component fortune.generator, got %v", entry["component"])
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.WithFields(map[string]interface{}{
		"birth_date":  "1990-03-15",
		"target_date": "2024-06-01",
		"score":       40,
	}).Info("daily fortune")

	entry := decodeEntry(t, &buf)
	if entry["birth_date"] != "1990-03-15" {
		t.Errorf("Expected birth_date, got %v", entry["birth_date"])
	}
	if entry["score"] != float64(40) {
		t.Errorf("Expected score 40, got %v", entry["score"])
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.WithError(errors.New("connection refused")).WithField("team_id", "core").Error("team lookup failed")

	entry := decodeEntry(t, &buf)
	if entry["error"] != "connection refused" {
		t.Errorf("Expected error field, got %v", entry["error"])
	}
	if entry["team_id"] != "core" {
		t.Errorf("Expected team_id core, got %v", entry["team_id"])
	}
}

func TestLogFormats(t *testing.T) {
	for _, format := range []string{"json", "console", "pretty"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&config.Config{Env: "test", LogLevel: "info", LogFormat: format}, &buf)
			log.Info("test message")

			output := buf.String()
			if !strings.Contains(output, "test message") {
				t.Errorf("Expected output to contain 'test message', got: %s", output)
			}
			if format == "json" && !strings.Contains(output, `"service":"ohaeng"`) {
				t.Errorf("Expected service field in JSON output, got: %s", output)
			}
		})
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("discarded")
	log.Component("x").WithError(errors.New("y")).Error("discarded")
}
