package store

import "errors"

// Sentinel errors returned by store constructors and connection helpers.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrMissingConnectionParams is returned by [NewRedisSessionStore] when
	// the host is empty or the port is outside 1..65535. No network I/O has
	// happened when it is returned.
	ErrMissingConnectionParams = errors.New("missing or invalid store connection parameters")

	// ErrConnection is returned when the store cannot be reached or
	// authenticated. It never escapes a [SessionStore] method; it is logged
	// and reported as false/absent.
	ErrConnection = errors.New("store connection failed")
)
