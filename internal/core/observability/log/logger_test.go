package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoggerWritesJSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelDebug, "json")

	l.Info("tick",
		String("node", "Steal something"),
		Int("cursor", 1),
		Bool("terminal", false),
		Duration("took", time.Millisecond),
		Uint64("fingerprint", 42),
		Error(errors.New("boom")),
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "tick", entry["msg"])
	require.Equal(t, "Steal something", entry["node"])
	require.EqualValues(t, 1, entry["cursor"])
	require.Equal(t, false, entry["terminal"])
	require.EqualValues(t, 42, entry["fingerprint"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelWarn, "console")

	l.Debug("hidden")
	l.Info("hidden")
	require.Zero(t, buf.Len())

	l.Warn("shown")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "WARN")

	buf.Reset()
	l.SetLevel(LevelDebug)
	require.Equal(t, LevelDebug, l.GetLevel())
	l.Log(LevelDebug, "now visible")
	require.Contains(t, buf.String(), "now visible")
}

func TestWithSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, LevelError, "json")
	child := l.With(String("agent", "robber"))

	child.Info("dropped")
	require.Zero(t, buf.Len())

	l.SetLevel(LevelInfo)
	child.Info("kept")
	require.True(t, strings.Contains(buf.String(), `"agent":"robber"`))
}

func TestNopDiscards(t *testing.T) {
	l := NewNop()
	l.Error("nothing happens", String("k", "v"))
	l.Log(LevelError, "still nothing")
	require.NoError(t, l.Sync())
}

func TestSyncFlushesWriter(t *testing.T) {
	var buf bytes.Buffer
	var l Log = NewWithWriter(&buf, LevelInfo, "console")
	l.Info("flushed")
	require.NoError(t, l.Sync())
	require.Contains(t, buf.String(), "INFO")
	require.Contains(t, buf.String(), "flushed")
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in    string
		want  Level
		known bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"", LevelInfo, true},
		{"warning", LevelWarn, true},
		{"error", LevelError, true},
		{"verbose", LevelInfo, false},
	}
	for _, c := range cases {
		got, ok := ParseLevel(c.in)
		require.Equal(t, c.want, got, c.in)
		require.Equal(t, c.known, ok, c.in)
	}
}
