package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupWith(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	err := Load(cfg, lookupWith(map[string]string{"OPENROUTER_API_KEY": "sk-or-v1-test"}))
	require.NoError(t, err)

	assert.Equal(t, "sk-or-v1-test", cfg.APIKey)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
}

func TestLoadKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		DBPath:       "/tmp/webui.db",
		FetchTimeout: 5 * time.Second,
	}
	err := Load(cfg, lookupWith(map[string]string{"OPENROUTER_API_KEY": "k"}))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/webui.db", cfg.DBPath)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
}

func TestLoadMissingAPIKey(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"unset", map[string]string{}},
		{"empty", map[string]string{"OPENROUTER_API_KEY": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Load(&Config{}, lookupWith(tt.vars))
			assert.ErrorIs(t, err, ErrMissingAPIKey)
		})
	}
}
