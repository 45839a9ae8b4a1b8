package seeder

import "errors"

var (
	// ErrNoStore is returned when commerce backend has no store to configure.
	ErrNoStore = errors.New("no store found")
	// ErrUnresolvedReference is returned when entity refers to natural key that was never created.
	ErrUnresolvedReference = errors.New("unresolved reference")
)
