// Package api is the transport-neutral RPC boundary of the session service.
//
// [SessionAPI] turns every service call into a structured response and never
// returns an error or lets a panic escape. The HTTP and gRPC handlers are thin
// decoders around it.
package api
