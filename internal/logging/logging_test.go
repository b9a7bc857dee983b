package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug", false))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN ", false))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud", false))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("", false))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("error", true))
}

func TestNew_WritesJSONWithComponent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "easel.log")

	log, err := New(Options{File: path, Level: "info"})
	require.NoError(t, err)

	comp := log.Component("loader")
	comp.Debug().Msg("hidden")
	comp.Info().Int("page", 3).Msg("fetched")
	require.NoError(t, log.Close())
	require.NoError(t, log.Close(), "second close is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "loader", entry["component"])
	assert.Equal(t, "fetched", entry["message"])
	assert.EqualValues(t, 3, entry["page"])
	assert.Contains(t, entry, "time")
}

func TestNew_EmptyPathFails(t *testing.T) {
	_, err := New(Options{File: "  "})
	assert.Error(t, err)
}

func TestNopAndNilComponent(t *testing.T) {
	var nilLogger *Logger
	l := nilLogger.Component("x")
	l.Info().Msg("dropped")
	assert.NoError(t, nilLogger.Close())
	assert.NoError(t, Nop().Close())
}
