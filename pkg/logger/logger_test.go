package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLogger_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.log")
	l := NewZapLogger(&ZapLoggerConfig{
		Encoding:    "json",
		Level:       "info",
		OutputPaths: []string{path},
	})

	l.Debug("hidden")
	l.Info("product added", zap.String("product_id", "P1"))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"product added"`)
	assert.Contains(t, string(data), `"product_id":"P1"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewZapLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.log")
	l := NewZapLogger(&ZapLoggerConfig{
		Encoding:    "json",
		Level:       "loud",
		OutputPaths: []string{path},
	})

	l.Debug("debug line")
	l.Info("info line")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "info line")
	assert.NotContains(t, string(data), "debug line")
}

func TestWith_CarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(zap.New(core)).With(zap.String("session_id", "abc"))

	l.Warn("rejected")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rejected", entries[0].Message)
	assert.Equal(t, "abc", entries[0].ContextMap()["session_id"])
}
