package repository

import "errors"

var (
	// ErrNotFound means no row matched the requested id.
	ErrNotFound = errors.New("not found")

	// ErrMultipleMatches means more than one row carries the same id. Ids
	// are unique keys, so this only happens when the store is corrupt;
	// callers should treat it as fatal.
	ErrMultipleMatches = errors.New("multiple rows match id")

	// ErrMissingID means an update was asked for an entity that has never
	// been saved.
	ErrMissingID = errors.New("entity has no id")
)
