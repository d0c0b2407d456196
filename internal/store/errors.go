package store

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// WriteError wraps a failed storage write.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// ReadError wraps a failed storage read.
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *ReadError) Unwrap() error { return e.Err }

// DeleteError wraps a failed storage delete.
type DeleteError struct {
	Op  string
	Err error
}

func (e *DeleteError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *DeleteError) Unwrap() error { return e.Err }

// ValidationError reports input rejected before any storage call was made,
// so callers can tell "input rejected" apart from "operation failed".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason) }

// Storage errors are logged where they occur, then propagated unchanged.
// Nothing in this package retries or swallows them.

func (s *Store) writeErr(op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("storage write failed")
	return &WriteError{Op: op, Err: err}
}

func (s *Store) readErr(op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("storage read failed")
	return &ReadError{Op: op, Err: err}
}

func (s *Store) deleteErr(op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("storage delete failed")
	return &DeleteError{Op: op, Err: err}
}
