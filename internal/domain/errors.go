package domain

import (
	"errors"

	"kmacrypt/internal/curve"
)

var (
	// ErrInvalidSquareRoot is returned when a point cannot be built from an x coordinate.
	ErrInvalidSquareRoot = curve.ErrInvalidSquareRoot
	// ErrTagMismatch is returned when a recomputed authentication tag differs.
	ErrTagMismatch = errors.New("authentication tag mismatch")
	// ErrNotFound is returned when an input file or key does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrWrite is returned when an output cannot be written.
	ErrWrite = errors.New("write failed")
	// ErrMalformedRecord is returned when a persisted file is truncated or unparsable.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrPassphraseRequired is returned when an operation needs a passphrase and got none.
	ErrPassphraseRequired = errors.New("passphrase required (-p)")
)
