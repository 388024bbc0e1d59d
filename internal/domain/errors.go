package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrBackendUnavailable indicates the admin backend is unreachable
	// or answered with a non-success status.
	ErrBackendUnavailable = errors.New("admin backend is unavailable")

	// ErrAuthFailed indicates the access token was rejected
	ErrAuthFailed = errors.New("authentication token is invalid")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")
)
