// Package server runs the HTTP and gRPC transports of the session API and
// shuts them down together when the run context is cancelled.
package server
