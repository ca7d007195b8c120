package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: LevelInfo, Encoding: EncodingJSON}, &buf)

	logger.With(String("component", "client")).Info("tick",
		Int("round", 3),
		Uint64("digest", 42),
		Bool("ok", true),
		Error(errors.New("boom")),
	)
	logger.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "tick", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "client", entry["component"])
	assert.Equal(t, 3.0, entry["round"])
	assert.Equal(t, "boom", entry["error"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: LevelWarn, Encoding: EncodingConsole}, &buf)
	child := logger.With(String("k", "v"))

	child.Info("quiet")
	assert.Empty(t, buf.String())

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, child.GetLevel(), "children share the level")

	child.Debug("loud")
	assert.Contains(t, buf.String(), "loud")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelFatal,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestConfig_YAML(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte("level: debug\nencoding: console\n"), &cfg))
	assert.Equal(t, Config{Level: LevelDebug, Encoding: EncodingConsole}, cfg)

	assert.Error(t, yaml.Unmarshal([]byte("level: chatty\n"), &cfg))
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.Info("nothing")
	assert.NoError(t, logger.Sync())
}
