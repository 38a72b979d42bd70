package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationUnavailable indicates no generation backend is
	// configured. Asking still works; answers fall back to the
	// extractive path.
	ErrGenerationUnavailable = errors.New("generation backend unavailable")

	// ErrGenerationFailed indicates the generation backend was called
	// and failed. Callers fall back to the extractive path.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrFeedFetch indicates a feed could not be retrieved. This is
	// distinct from a feed that was retrieved but contained no items.
	ErrFeedFetch = errors.New("feed fetch failed")
)
