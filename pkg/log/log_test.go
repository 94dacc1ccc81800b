package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"error", LogLevelError, false},
		{"warn", LogLevelWarn, false},
		{" INFO ", LogLevelInfo, false},
		{"debug", LogLevelDebug, false},
		{"trace", LogLevelTrace, false},
		{"loud", LogLevelError, true},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", 0, LogLevelWarn)

	l.Info("hidden")
	l.Warn("shown %d", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown 1", entry["msg"])
}

func TestLoggerWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", 0, LogLevelInfo).With("session", "abc")

	l.Info("started")

	var entry map[string]string
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "abc", entry["session"])
	assert.Equal(t, "started", entry["msg"])
}

func TestChildFollowsParentLevel(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "", 0, LogLevelInfo)
	child := parent.With("session", "abc")

	child.Debug("before")
	assert.Empty(t, buf.String())

	parent.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, child.Level())

	child.Debug("after")

	var entry map[string]string
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "after", entry["msg"])
	assert.Equal(t, "abc", entry["session"])
}
