package services

import "errors"

var (
	// ErrValidation marks a malformed administrative update; state is left
	// unchanged when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrMoodNotFound is returned where an unknown mood is a caller error
	// (admin edits, feedback). Recommendation and analytics reads degrade
	// instead of returning it.
	ErrMoodNotFound = errors.New("unknown mood")
)
