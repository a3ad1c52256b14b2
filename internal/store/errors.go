package store

import "errors"

// Sentinel errors returned by store operations. Services translate these
// into domain errors before they reach handlers.
var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyExists is returned when creating a document whose ID or
	// unique index value is already taken.
	ErrAlreadyExists = errors.New("document already exists")
	// ErrArtistNotFound is returned when an artist cannot be resolved by ID or user ID.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrTattooNotFound is returned when a tattoo cannot be resolved by ID.
	ErrTattooNotFound = errors.New("tattoo not found")
)
