package keymask

import "errors"

var (
	// ErrConfiguration is returned when the masking secret is missing or
	// malformed, or when Mask is called on an unconfigured Masker.
	ErrConfiguration = errors.New("key masking is not configured")
	// ErrEmptyAlias is returned when an alias is empty after normalization.
	ErrEmptyAlias = errors.New("alias is empty")
)
