// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested series slug does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the record exists but the requester's owner identity
	// does not match. Callers must keep this distinct from ErrNotFound.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput means a required field was empty or malformed. Rejected
	// before any state changes.
	ErrInvalidInput = errors.New("invalid input")
)

// SchemaNotReadyError reports that the backing database is missing its
// expected tables. This is a deployment fault (provisioning never ran), not
// data absence, and it must never be mistaken for ErrNotFound.
type SchemaNotReadyError struct {
	Op  string // operation that hit the missing table
	Err error  // underlying driver error
}

func (e *SchemaNotReadyError) Error() string {
	return fmt.Sprintf("schema not ready (%s): %v", e.Op, e.Err)
}

func (e *SchemaNotReadyError) Unwrap() error { return e.Err }

// IsSchemaNotReady reports whether err carries a SchemaNotReadyError.
func IsSchemaNotReady(err error) bool {
	var snr *SchemaNotReadyError
	return errors.As(err, &snr)
}
