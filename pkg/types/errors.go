package types

import "errors"

// Repository operation errors.
var (
	ErrNotFound  = errors.New("entity not found")
	ErrInvalidID = errors.New("invalid entity ID")
)

// Input validation errors.
var (
	ErrInvalidName   = errors.New("name must not be empty")
	ErrInvalidRating = errors.New("rating must be between 1 and 10")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrDataDirEmpty   = errors.New("data directory must not be empty")
)
