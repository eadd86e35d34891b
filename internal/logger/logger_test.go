// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastEntry decodes the last JSON line written to buf.
func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

// ── constructors ──

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("notes-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("started")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "notes-server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WarnLevel(t *testing.T) {
	NewClientLogger("notes-client")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	// the other tests expect the server level
	NewLogger("restore")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

// ── child loggers ──

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "parent").Logger()}

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Info().Msg("from child")
	assert.Equal(t, "parent", lastEntry(t, &buf)["role"])
}

func TestWithTraceID_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	l.WithTraceID("trace-123").Info().Msg("traced")

	assert.Equal(t, "trace-123", lastEntry(t, &buf)["trace_id"])
}

// ── context lookup ──

func TestFromContext(t *testing.T) {
	t.Run("empty context", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
		require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/all-notes", nil)))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
		ctx := zl.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")
		assert.Equal(t, "abc", lastEntry(t, &buf)["trace_id"])

		req := httptest.NewRequest(http.MethodGet, "/all-notes", nil).WithContext(ctx)
		FromRequest(req).Info().Msg("from request")
		assert.Equal(t, "from request", lastEntry(t, &buf)["message"])
	})
}

// ── printf adapter ──

func TestPrintf_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	l.Printf("applied %d migrations", 2)
	entry := lastEntry(t, &buf)
	assert.Equal(t, "applied 2 migrations", entry["message"])
	assert.Equal(t, "info", entry["level"])

	l.Fatalf("failed: %s", "boom")
	entry = lastEntry(t, &buf)
	assert.Equal(t, "failed: boom", entry["message"])
	assert.Equal(t, "error", entry["level"])
}
