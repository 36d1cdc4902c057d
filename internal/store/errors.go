package store

import "errors"

var (
	// ErrNotFound indicates the referenced entity doesn't exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a required field is missing.
	ErrInvalidInput = errors.New("invalid input")
)
