package domain

import "errors"

var (
	// ErrNotFound covers absent listings, categories and users. Stores wrap
	// their own "no rows" errors into this one and nothing else.
	ErrNotFound = errors.New("not found")

	// ErrInvalidComparison is returned for a comparison request with the
	// wrong listing count or mixed categories.
	ErrInvalidComparison = errors.New("invalid comparison")

	// ErrValidation marks malformed filters and request payloads. Wrapping
	// messages carry the field-level detail.
	ErrValidation = errors.New("validation failed")

	// ErrAccessDenied is raised when the authenticated user may not perform
	// the requested mutation.
	ErrAccessDenied = errors.New("access denied")
)
