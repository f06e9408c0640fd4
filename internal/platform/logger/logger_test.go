package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"run_id": "r-1"})

	l.Warn("enclosures skipped", map[string]any{
		"path":  "animalEnclosures.txt",
		"error": errors.New("no such file"),
		"":      "dropped",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, zapcore.WarnLevel, e.Level)
	assert.Equal(t, "enclosures skipped", e.Message)

	ctx := e.ContextMap()
	assert.Equal(t, "r-1", ctx["run_id"])
	assert.Equal(t, "animalEnclosures.txt", ctx["path"])
	assert.Equal(t, "no such file", ctx["error"])
	assert.NotContains(t, ctx, "")
}

func TestZapLogger_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromZap(zap.New(core))

	l.Debug("hidden", nil)
	l.Info("shown", nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	l.With(nil).Error("ignored", map[string]any{"k": 1})
	assert.NoError(t, l.Sync())
}
