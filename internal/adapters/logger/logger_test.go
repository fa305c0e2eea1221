package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pantry/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	l := logger.New()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Info("cache primed", "key", "recipes", "count", 3)

	out := buf.String()
	assert.Contains(t, out, "cache primed")
	assert.Contains(t, out, "key=recipes")
	assert.Contains(t, out, "count=3")
}

func TestLogger_Error(t *testing.T) {
	l := logger.New()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Error(zerr.New("refetch failed"))

	out := buf.String()
	assert.Contains(t, out, "operation failed")
	assert.Contains(t, out, "refetch failed")
}

func TestLogger_DebugSuppressedAtInfoLevel(t *testing.T) {
	l := logger.New()
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Debug("request", "method", "GET")

	assert.Empty(t, buf.String())
}

func TestLogger_DebugEmittedAtDebugLevel(t *testing.T) {
	l := logger.NewWithLevel(slog.LevelDebug)
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Debug("request", "method", "GET", "url", "https://api.example.com/recipes")

	out := buf.String()
	assert.Contains(t, out, "request")
	assert.Contains(t, out, "method=GET")
}
