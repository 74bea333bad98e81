// Package store reads and writes Open WebUI's config row — the single
// row in the config table whose data column holds the serialized
// configuration document.
package store

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

// configRowID is the fixed primary key of the config row.
const configRowID = 1

// ConfigRow is the persisted configuration document and its row key.
type ConfigRow struct {
	ID   int64
	Data []byte
}

// Store provides access to the config row of one webui database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the database at path. The file must already exist — this
// tool maintains a host application's database, it never creates one.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, storeErr("open", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return storeErr("ping", err)
	}
	return nil
}

// ReadRow fetches the config row.
func (s *Store) ReadRow(ctx context.Context) (*ConfigRow, error) {
	row := &ConfigRow{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, data FROM config WHERE id = ?
	`, configRowID).Scan(&row.ID, &row.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &RowError{Table: "config", ID: configRowID}
	}
	if err != nil {
		return nil, storeErr("read config row", err)
	}
	return row, nil
}

// WriteRow replaces the config row's document in a single transaction.
// The update is all-or-nothing; a failure leaves the stored document
// untouched.
func (s *Store) WriteRow(ctx context.Context, data []byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin write", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE config SET data = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, string(data), configRowID)
	if err != nil {
		tx.Rollback()
		return storeErr("write config row", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return storeErr("write config row", err)
	}
	if n == 0 {
		tx.Rollback()
		return &RowError{Table: "config", ID: configRowID}
	}

	if err := tx.Commit(); err != nil {
		return storeErr("commit write", err)
	}
	return nil
}
