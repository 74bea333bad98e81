// Package config builds the run configuration once at startup.
// Collaborators receive it explicitly — nothing below the command layer
// reads the environment.
package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
)

// DefaultDBPath is the standard Open WebUI database location.
const DefaultDBPath = "/opt/open-webui/backend/data/webui.db"

// ErrMissingAPIKey indicates the OpenRouter key is absent. This is a
// fatal precondition — no fetch is attempted without it.
var ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY is not set")

// Config holds everything one run needs.
type Config struct {
	// DBPath is the webui.db location.
	DBPath string

	// APIKey is the OpenRouter API key (OPENROUTER_API_KEY).
	APIKey string

	// ConnectionIndex selects which openai.api_configs entry to write.
	ConnectionIndex int

	// Apply persists changes; false means dry-run.
	Apply bool

	// Verbose lists individual IDs in the report.
	Verbose bool

	// Backup snapshots the database file before an apply.
	Backup bool

	// BackupDir is where snapshots land.
	BackupDir string

	// FetchTimeout bounds the catalog request.
	FetchTimeout time.Duration
}

// Load fills environment-supplied fields. A .env in the working
// directory is honored when present; real environment variables win.
func Load(cfg *Config, lookup func(string) (string, bool)) error {
	godotenv.Load()

	key, ok := lookup("OPENROUTER_API_KEY")
	if !ok || key == "" {
		return ErrMissingAPIKey
	}
	cfg.APIKey = key

	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	return nil
}
