package domain

import "errors"

var (
	// ErrPropertyNotFound is returned when a property id is not in the catalog
	ErrPropertyNotFound = errors.New("property not found in catalog")

	// ErrProfileNotFound is returned when a user profile does not exist yet
	ErrProfileNotFound = errors.New("user profile not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrBackendUnavailable is returned when no AI backend is configured
	ErrBackendUnavailable = errors.New("ai backend not configured")

	// ErrBackendFailure is returned when the AI backend request fails
	ErrBackendFailure = errors.New("ai backend request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
