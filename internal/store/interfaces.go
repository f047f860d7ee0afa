package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"
)

// SessionStore is a TTL-bounded key/value cache for opaque session blobs.
//
// Implementations are fail-soft: connection and command failures are logged
// inside the store and reported as false or absent, never as errors.
type SessionStore interface {
	// SetWithTTL writes value under key with an atomic expiry. Overwrites are
	// allowed. A non-positive ttl is refused.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) bool
	// Get returns the value under key. Absent covers never-written, expired
	// and unreachable.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Delete reports whether a key was removed.
	Delete(ctx context.Context, key string) bool
	// RemainingTTL returns the time left before key expires. Absent when the
	// key is missing or has no expiry.
	RemainingTTL(ctx context.Context, key string) (time.Duration, bool)
	// RefreshTTL resets the expiry of an existing key without touching its
	// value.
	RefreshTTL(ctx context.Context, key string, ttl time.Duration) bool
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) bool
	// Close releases the underlying connection pool.
	Close() error
}
