package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "", slog.LevelInfo).With("word", "유진")

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Warn("undetermined josa", "josa", "이/가")
	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "undetermined josa")
	assert.Contains(t, out, "word"+reset+"=유진")
	assert.Contains(t, out, "josa"+reset+"=이/가")
}

func TestJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "json", slog.LevelDebug)
	log.Debug("selected", "form", "은")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "selected", rec["msg"])
	assert.Equal(t, "은", rec["form"])
}
