package store

import (
	"errors"
	"fmt"
)

// Common store errors.
var (
	// ErrRowNotFound indicates the config row does not exist.
	ErrRowNotFound = errors.New("config row not found")

	// ErrStore indicates an I/O or lock problem with the backing database.
	ErrStore = errors.New("config store error")
)

// RowError wraps ErrRowNotFound with the row locator.
type RowError struct {
	Table string
	ID    int64
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row not found: id=%d", e.Table, e.ID)
}

func (e *RowError) Unwrap() error {
	return ErrRowNotFound
}

// StoreError wraps ErrStore with the failing operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return ErrStore
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsNotFound checks if an error is a missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRowNotFound)
}

// IsStore checks if an error is a database I/O error.
func IsStore(err error) bool {
	return errors.Is(err, ErrStore)
}
