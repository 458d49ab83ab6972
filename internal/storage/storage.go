// Package storage holds what the repository implementations share.
package storage

import "errors"

var (
	// ErrNotFound is returned by updates that matched no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert or update violates a unique key.
	ErrDuplicate = errors.New("duplicate key")

	// ErrInvalidReference is returned when a row points at a parent that does not exist.
	ErrInvalidReference = errors.New("referenced row does not exist")
)
