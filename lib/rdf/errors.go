// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"errors"
	"fmt"
	"log/slog"
)

// Error taxonomy for value construction and arithmetic. All failures
// are local and synchronous; nothing in this package retries. Match
// with errors.Is against these sentinels.
var (
	// ErrInitialize: the supplied initializer cannot produce a valid
	// instance (wrong grammar, wrong shape).
	ErrInitialize = errors.New("value cannot be initialized from this input")

	// ErrDecode: wire bytes or human-readable text are malformed.
	// Decode errors also match ErrInitialize and ErrValue — a decode
	// failure is both an initialization failure and a value error.
	ErrDecode = errors.New("value encoding is malformed")

	// ErrTypeMismatch: a datastore scalar's runtime type disagrees
	// with the kind's declared store tag, or an operand of an
	// incompatible kind was supplied. Never silently coerced.
	ErrTypeMismatch = errors.New("scalar type does not match the declared store type")

	// ErrValue: a parsed value violates a semantic constraint
	// (interpolation progress outside [0,1], unparsable boolean).
	ErrValue = errors.New("value violates a semantic constraint")
)

// decodeError matches ErrDecode, ErrInitialize, and ErrValue under
// errors.Is.
type decodeError struct {
	message string
}

func (e *decodeError) Error() string { return e.message }

func (e *decodeError) Is(target error) bool {
	return target == ErrDecode || target == ErrInitialize || target == ErrValue
}

// decodeErrorf builds a decode error. Decode failures are routine when
// ingesting data from old clients, so they are logged at debug rather
// than surfaced louder here — the caller decides severity.
func decodeErrorf(format string, args ...any) error {
	err := &decodeError{message: fmt.Sprintf(format, args...)}
	slog.Debug("rdf: decode failure", "error", err.message)
	return err
}

func initializeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInitialize, fmt.Sprintf(format, args...))
}

func typeMismatchf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTypeMismatch, fmt.Sprintf(format, args...))
}

func valueErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValue, fmt.Sprintf(format, args...))
}
