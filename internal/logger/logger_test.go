package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_RoleField verifies that every entry carries the role.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "test-role", false)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "caller-role", false)

	l.Info().Msg("caller")

	entry := decodeEntry(t, &buf)
	_, hasFunc := entry["func"]
	assert.True(t, hasFunc, "expected 'func' caller field in log entry")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewLogger_Levels verifies the verbose switch.
func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(&buf, "quiet", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	l := NewLogger(&buf, "verbose", true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	l.Debug().Msg("visible")
	assert.NotEmpty(t, buf.String())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "role", false).WithComponent("discovery")

	l.Warn().Msg("skipped")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "discovery", entry["component"])
	assert.Equal(t, "role", entry["role"])
	assert.Equal(t, "warn", entry["level"])
}

// ── context ──────────────────────────────────────────────────────────────────

// TestFromContext_RoundTrip verifies that a logger attached with WithContext
// is returned by FromContext instead of the fallback.
func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "ctx-role", false)
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx, Nop())
	assert.Same(t, l, got)

	got.Info().Msg("from context")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-role", entry["role"])
}

// TestFromContext_Fallback verifies that a context without logger yields the
// fallback.
func TestFromContext_Fallback(t *testing.T) {
	fallback := Nop()

	assert.Same(t, fallback, FromContext(context.Background(), fallback))
}
