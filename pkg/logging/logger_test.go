package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if logger.Logger == nil {
		t.Fatal("Logger.Logger is nil")
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"padded value", " error ", slog.LevelError},
		{"invalid level", "INVALID", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OKAY_LOG_LEVEL", tt.envValue)
			level := getLogLevelFromEnv()
			if level != tt.expected {
				t.Errorf("getLogLevelFromEnv() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestSessionID(t *testing.T) {
	t.Run("generate session ID", func(t *testing.T) {
		id1 := GenerateSessionID()
		id2 := GenerateSessionID()

		if id1 == "" || id2 == "" {
			t.Error("GenerateSessionID() returned empty string")
		}
		if id1 == id2 {
			t.Error("GenerateSessionID() returned duplicate IDs")
		}
		if len(id1) != 16 {
			t.Errorf("GenerateSessionID() returned wrong length: %d", len(id1))
		}
	})

	t.Run("context with session ID", func(t *testing.T) {
		ctx := WithSessionID(context.Background(), "test-session")
		if got := GetSessionID(ctx); got != "test-session" {
			t.Errorf("GetSessionID() = %q, want %q", got, "test-session")
		}
	})

	t.Run("context without session ID", func(t *testing.T) {
		if id := GetSessionID(context.Background()); id != "" {
			t.Errorf("GetSessionID() = %q, want empty string", id)
		}
	})

	t.Run("auto-generate session ID", func(t *testing.T) {
		ctx := WithSessionID(context.Background(), "")
		if id := GetSessionID(ctx); len(id) != 16 {
			t.Errorf("auto-generated session ID = %q, want 16 hex characters", id)
		}
	})
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelDebug)
	ctx := WithSessionID(context.Background(), "test-id-123")

	decode := func(t *testing.T) map[string]interface{} {
		t.Helper()
		var entry map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("Failed to parse log JSON: %v", err)
		}
		return entry
	}

	t.Run("info logging", func(t *testing.T) {
		buf.Reset()
		logger.Info(ctx, "ball launched", "x", 400.0)

		entry := decode(t)
		if entry["msg"] != "ball launched" {
			t.Errorf("Expected message 'ball launched', got %v", entry["msg"])
		}
		if entry["level"] != "INFO" {
			t.Errorf("Expected level 'INFO', got %v", entry["level"])
		}
		if entry["session_id"] != "test-id-123" {
			t.Errorf("Expected session_id 'test-id-123', got %v", entry["session_id"])
		}
		if entry["x"] != 400.0 {
			t.Errorf("Expected x 400, got %v", entry["x"])
		}
	})

	t.Run("error logging", func(t *testing.T) {
		buf.Reset()
		logger.Error(ctx, "screen failed", errors.New("no tty"))

		entry := decode(t)
		if entry["level"] != "ERROR" {
			t.Errorf("Expected level 'ERROR', got %v", entry["level"])
		}
		if entry["error"] != "no tty" {
			t.Errorf("Expected error 'no tty', got %v", entry["error"])
		}
	})

	t.Run("debug logging", func(t *testing.T) {
		buf.Reset()
		logger.Debug(ctx, "frame")
		if entry := decode(t); entry["level"] != "DEBUG" {
			t.Errorf("Expected level 'DEBUG', got %v", entry["level"])
		}
	})

	t.Run("warn logging", func(t *testing.T) {
		buf.Reset()
		logger.Warn(ctx, "config missing")
		if entry := decode(t); entry["level"] != "WARN" {
			t.Errorf("Expected level 'WARN', got %v", entry["level"])
		}
	})
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelWarn)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output below WARN, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error(context.Background(), "dropped", errors.New("x"))
}

func TestWrapError(t *testing.T) {
	t.Run("wrap nil error", func(t *testing.T) {
		if result := WrapError(nil, "context"); result != nil {
			t.Errorf("WrapError(nil) should return nil, got %v", result)
		}
	})

	t.Run("wrap error with context", func(t *testing.T) {
		originalErr := errors.New("original error")
		wrapped := WrapError(originalErr, "additional context")

		if wrapped.Error() != "additional context: original error" {
			t.Errorf("WrapError() = %q", wrapped.Error())
		}
		if !errors.Is(wrapped, originalErr) {
			t.Error("WrapError() should preserve original error")
		}
	})

	t.Run("wrap error with formatted context", func(t *testing.T) {
		wrapped := WrapError(errors.New("original error"), "context with %s and %d", "string", 42)
		if wrapped.Error() != "context with string and 42: original error" {
			t.Errorf("WrapError() = %q", wrapped.Error())
		}
	})
}

func TestLogWithoutSessionID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, slog.LevelInfo)

	logger.Info(context.Background(), "test message")

	if strings.Contains(buf.String(), "session_id") {
		t.Error("Log should not contain session_id when none is set in context")
	}
}
