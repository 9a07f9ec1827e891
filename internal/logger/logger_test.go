package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN", "dev"))
	assert.Equal(t, slog.LevelError, ParseLevel("error", "prod"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("", "prod"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("verbose", "dev"))
}

func TestContextHandler_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewContextHandler(slog.NewJSONHandler(&buf, nil)))

	ctx := WithRequestID(context.Background(), "req-123")
	log.InfoContext(ctx, "hello", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "req-123", rec["request_id"])
	assert.Equal(t, "v", rec["k"])
}

func TestFanout_RespectsLevels(t *testing.T) {
	var all, errsOnly bytes.Buffer
	h := Fanout(
		slog.NewTextHandler(&all, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errsOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h).With("component", "test")

	log.Info("routine")
	log.Error("broken")

	assert.Contains(t, all.String(), "routine")
	assert.Contains(t, all.String(), "broken")
	assert.NotContains(t, errsOnly.String(), "routine")
	assert.Contains(t, errsOnly.String(), "broken")
	assert.Contains(t, errsOnly.String(), "component=test")
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
