// Package grpc is the gRPC transport of the session API.
//
// The service is described by hand in [ServiceDesc] and carries model
// structs through the JSON codec registered by package rpc, so it needs no
// generated protobuf code.
package grpc
