package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestLevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	Debug("hidden debug")
	Info("hidden info")
	Warn("shown warn")
	Error("shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "shown error")
}

func TestRequestIDContext(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))

	FromContext(ctx).Info("scoped")
	assert.True(t, strings.Contains(buf.String(), `"request_id":"test-req-123"`))

	assert.Empty(t, GetRequestID(context.Background()))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestConfigPresets(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		format    string
		level     slog.Level
		addSource bool
	}{
		{"default", DefaultConfig(), LogFormatText, slog.LevelInfo, false},
		{"production", ProductionConfig(), LogFormatJSON, slog.LevelInfo, false},
		{"development", DevelopmentConfig(), LogFormatText, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, DefaultServiceName, tt.config.ServiceName)
			assert.Equal(t, tt.format, tt.config.Format)
			assert.Equal(t, tt.level, tt.config.LogLevel())
			assert.Equal(t, tt.addSource, tt.config.AddSource)
		})
	}
}

func TestLogLevelParsing(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for level, want := range cases {
		assert.Equal(t, want, Config{Level: level}.LogLevel(), level)
	}
}
