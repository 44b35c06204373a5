package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDatasetUnavailable indicates the dataset could not be loaded.
	// Searches against an unavailable dataset return no results.
	ErrDatasetUnavailable = errors.New("dataset unavailable")

	// ErrUnsupportedFormat indicates a dataset file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrUnknownSetting indicates a configuration key that is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)
