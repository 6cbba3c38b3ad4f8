package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewWithWriter_Formats(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "info", "json").Info("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"k":1`)

	buf.Reset()
	NewWithWriter(&buf, "info", "text").Info("hello", "k", 1)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=1")
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn", "json")
	l.Info("dropped")
	l.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "run.log")
	l, closer, err := New(Config{Level: "debug", Format: "json", Output: "file", FilePath: path, MaxSize: 1})
	require.NoError(t, err)
	l.Debug("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"to file"`))
	assert.Contains(t, string(data), `"source"`, "debug level adds source")
}

func TestNew_StdStreams(t *testing.T) {
	for _, out := range []string{"stdout", "stderr", ""} {
		l, closer, err := New(Config{Output: out})
		require.NoError(t, err)
		require.NotNil(t, l)
		require.NoError(t, closer.Close())
	}
}
