// Package common defines the error kinds shared by the clipdir storage
// engine and its command-line layer. Callers should use errors.Is to
// match these values; the wrapping error carries the description.
package common

import "errors"

var (
	// Storage errors: the directory or an entry file could not be read,
	// written or removed.
	ErrIO = errors.New("i/o failure")

	// Store-specific errors.
	ErrSizeLimit = errors.New("entry size exceeds limit")

	// Selector errors.
	ErrNotFound       = errors.New("not found")
	ErrMalformedInput = errors.New("malformed input")

	// ErrDedupe wraps the aggregated failures of one deduplication pass.
	ErrDedupe = errors.New("deduplication incomplete")
)
