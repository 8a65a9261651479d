package domain

import "errors"

// Sentinel errors surfaced by repositories and use cases. Callers match
// them with errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrItemNotFound is returned when an operation targets a missing item.
	ErrItemNotFound = errors.New("item not found")

	// ErrEmptyName rejects items whose normalized name is empty.
	ErrEmptyName = errors.New("item name must not be empty")

	// ErrZeroDelta rejects adjustments that represent no real change.
	ErrZeroDelta = errors.New("adjustment delta must not be zero")

	// ErrMalformedBackup is returned when a restore payload is not valid JSON.
	ErrMalformedBackup = errors.New("backup document is not valid JSON")
)
