package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNetwork indicates a transport failure or non-success response
	// from the catalog API or asset host.
	ErrNetwork = errors.New("network error")

	// ErrDecode indicates the catalog API response could not be
	// interpreted as the expected shape.
	ErrDecode = errors.New("malformed response")

	// ErrInvalidPage indicates a direct page jump outside [1, totalPages].
	// Rejected at the input boundary; never enters the pipeline.
	ErrInvalidPage = errors.New("page out of range")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSession indicates no signed-in user is configured.
	// Rating writes require a current user id.
	ErrNoSession = errors.New("no active session")
)
