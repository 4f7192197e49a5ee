package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrCatalogQuery indicates the catalog rejected or failed a file listing.
	// A dump stops at the first one.
	ErrCatalogQuery = errors.New("catalog query failed")

	// ErrOutputWrite indicates a file list could not be written to disk.
	ErrOutputWrite = errors.New("output write failed")
)
