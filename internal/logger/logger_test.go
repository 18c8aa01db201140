package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLogsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("production", &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("addr", ":8080").Msg("starting")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "starting", entry["message"])
	assert.Equal(t, ":8080", entry["addr"])
	assert.Equal(t, "production", entry["env"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestDevelopmentLogsConsole(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("development", &buf)

	log.Debug().Msg("visible")

	assert.Contains(t, buf.String(), "visible")
	assert.False(t, json.Valid(buf.Bytes()))
}
