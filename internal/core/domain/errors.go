package domain

import "errors"

// Domain errors. A missing handler is not among them: it is an expected
// negative result reported through Resolution.Fallback.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown renderer or backend name.
	ErrUnsupportedType = errors.New("unsupported type")
)
