package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("test").WithOutput(&buf)

	log.Info("fetch.done", map[string]any{"models": 42})

	var e Event
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	assert.Equal(t, LevelInfo, e.Level)
	assert.Equal(t, "test", e.Component)
	assert.Equal(t, "fetch.done", e.Event)
	assert.Equal(t, log.RunID(), e.RunID)
	assert.Equal(t, float64(42), e.Extra["models"])
}

func TestLoggerError(t *testing.T) {
	var buf bytes.Buffer
	log := New("test").WithOutput(&buf)

	log.Error("store.write_failed", nil, errors.New("database is locked"))

	var e Event
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	assert.Equal(t, LevelError, e.Level)
	assert.Equal(t, "database is locked", e.Error)
}

func TestWithComponentSharesRunID(t *testing.T) {
	log := New("owfree")
	sub := log.WithComponent("runner")

	assert.Equal(t, log.RunID(), sub.RunID())
	assert.NotEmpty(t, log.RunID())
}
