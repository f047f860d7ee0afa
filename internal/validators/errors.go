package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAlias      = errors.New("alias is required")
	ErrEmptyCiphertext = errors.New("ciphertext is required")
	ErrEmptyIV         = errors.New("iv is required")
	ErrEmptySalt       = errors.New("salt is required")
	ErrEmptyPassword   = errors.New("password is required")
)
