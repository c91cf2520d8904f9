// Package logging provides structured logging for the game and its front-ends.
// It wraps Go's slog package with a JSON handler and attaches a per-run session
// ID so the lines of one play session can be grouped.
package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with context-aware helpers
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing JSON to stderr.
// The level is read from OKAY_LOG_LEVEL (DEBUG, INFO, WARN, ERROR; default INFO).
// Stdout is left alone because the terminal front-end draws on it.
func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stderr, getLogLevelFromEnv())
}

// NewLoggerWithWriter creates a Logger writing JSON to w at the given level
func NewLoggerWithWriter(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{slog.New(handler)}
}

// Discard returns a Logger that drops everything
func Discard() *Logger {
	return NewLoggerWithWriter(io.Discard, slog.LevelError)
}

// LogWithContext logs a message and adds the session ID from ctx when present
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if sessionID := GetSessionID(ctx); sessionID != "" {
		args = append(args, "session_id", sessionID)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message with context and proper error formatting.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

type sessionIDKey struct{}

// WithSessionID adds a session ID to the context.
// An empty sessionID is replaced by a freshly generated one.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if sessionID == "" {
		sessionID = GenerateSessionID()
	}
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// GetSessionID extracts the session ID from the context, or "" if none is set
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateSessionID creates a new random 16 hex character ID
func GenerateSessionID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// ParseLevel converts a level name to a slog.Level.
// Unknown names fall back to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getLogLevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("OKAY_LOG_LEVEL"))
}

// WrapError wraps an error with additional context information.
// This preserves the original error while adding descriptive context.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
