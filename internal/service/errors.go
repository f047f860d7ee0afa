package service

import "errors"

var (
	// ErrValidation marks a request rejected before touching the store. The
	// wrapped error names the offending field.
	ErrValidation = errors.New("invalid request")

	// ErrSessionNotFound covers never-stored, expired, undecodable and
	// unreachable sessions alike.
	ErrSessionNotFound = errors.New("session not found or expired")

	// ErrStoreWriteFailed is returned when the store did not accept a write.
	ErrStoreWriteFailed = errors.New("failed to store session")

	// ErrStoreUnavailable is returned when the store does not answer a ping.
	ErrStoreUnavailable = errors.New("session store unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
