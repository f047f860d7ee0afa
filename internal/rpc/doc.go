// Package rpc holds the wire contract shared by the gRPC server handler and
// the gRPC client adapter: the service and method names and the JSON codec
// both sides negotiate through the "json" content-subtype.
package rpc
