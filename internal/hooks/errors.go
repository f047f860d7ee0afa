package hooks

import "errors"

var (
	ErrHandlerPanicked = errors.New("hook handler panicked")
	ErrNilAppData      = errors.New("app data is nil")
)
