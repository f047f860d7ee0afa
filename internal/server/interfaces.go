package server

import "context"

// Server is the lifecycle contract of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a transport fails,
	// then shuts everything down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}

// transport is one listening server owned by [server].
type transport interface {
	name() string
	serve() error
	shutdown(ctx context.Context) error
}
