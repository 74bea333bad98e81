package allowlist

import (
	"errors"
	"fmt"
)

// Locate failure classes.
var (
	// ErrIndexOutOfRange indicates the path names a connection slot that
	// does not exist. The engine never invents connections.
	ErrIndexOutOfRange = errors.New("connection index out of range")

	// ErrShapeMismatch indicates a traversed node has the wrong JSON shape.
	ErrShapeMismatch = errors.New("document shape mismatch")
)

// LocateError wraps a locate failure with the offending segment.
type LocateError struct {
	Path    string
	Segment string
	Reason  error
}

func (e *LocateError) Error() string {
	return fmt.Sprintf("locate %s: %v at %q", e.Path, e.Reason, e.Segment)
}

func (e *LocateError) Unwrap() error {
	return e.Reason
}

func locateErr(p Path, seg string, reason error) error {
	return &LocateError{Path: p.String(), Segment: seg, Reason: reason}
}

// IsIndexOutOfRange checks if an error is an index-out-of-range failure.
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

// IsShapeMismatch checks if an error is a shape-mismatch failure.
func IsShapeMismatch(err error) bool {
	return errors.Is(err, ErrShapeMismatch)
}
