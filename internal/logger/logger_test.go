package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok)

	id := GenerateRequestID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	ctx = WithRequestID(ctx, id)
	got, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestFromContextIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)

	InitWithWriter(NewConfig("info", "json", "test-service", "v1", "test", false), &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	FromContext(ctx).Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestInitWithWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)

	InitWithWriter(NewConfig("warn", "text", "test-service", "v1", "test", false), &buf)

	slog.Info("dropped")
	assert.Empty(t, buf.String())

	slog.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
