package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, level string) (*ZerologLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(Options{Level: level, Output: &buf}), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t, "debug")
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", errors.New("boom"))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 4)

	tests := []struct {
		level string
		msg   string
		key   string
		val   any
	}{
		{"debug", "dbg", "a", float64(1)},
		{"info", "inf", "b", float64(2)},
		{"warn", "wrn", "c", float64(3)},
		{"error", "err", "d", "boom"},
	}
	for i, tc := range tests {
		require.Equal(t, tc.level, lines[i]["level"])
		require.Equal(t, tc.msg, lines[i]["message"])
		require.Equal(t, tc.val, lines[i][tc.key])
	}
}

func TestZerologLogger_LevelFiltersLowerMessages(t *testing.T) {
	log, buf := newTestLogger(t, "warn")
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	require.Equal(t, "shown", lines[0]["message"])
}

func TestZerologLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t, "info")

	child := log.With("session_id", "abc", "client_id", 7)
	child.Info(context.Background(), "hello", "k", "v")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	require.Equal(t, "abc", lines[0]["session_id"])
	require.Equal(t, float64(7), lines[0]["client_id"])
	require.Equal(t, "v", lines[0]["k"])
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, zerolog.TraceLevel, ParseLevel("trace"))
	require.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	require.Equal(t, zerolog.WarnLevel, ParseLevel(" warning "))
	require.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	require.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := Nop()
	ctx := context.TODO()
	log.Info(ctx, "ctx-ok")
	log.With("a", 1).Error(ctx, "ctx-ok")
}
