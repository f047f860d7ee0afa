package service

import "errors"

// ErrAPIRejected is returned when the session API answered with a failure
// the client has no dedicated sentinel for.
var ErrAPIRejected = errors.New("session API rejected the request")
