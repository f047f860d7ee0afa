// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// ephemeral session API.
//
// The primary abstraction is [SessionAPIClient], which decouples the client
// service layer from the underlying protocol. Two implementations ship with
// the package: HTTP/JSON over resty ([NewHTTPSessionClient]) and gRPC with the
// JSON codec ([NewGRPCSessionClient]).
//
// Structured failures reported by the API (success=false) are returned as
// regular responses. Only transport faults become errors; they wrap the
// sentinels in errors.go so callers can use [errors.Is] regardless of the
// transport (e.g. [ErrUnavailable] when the API cannot be reached).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SessionAPIClient is the client side of the six session API operations.
type SessionAPIClient interface {
	// Create stores an encrypted blob under the alias carried by req.
	Create(ctx context.Context, req models.CreateSessionRequest) (models.CreateSessionResponse, error)

	// Get fetches the blob stored for alias.
	Get(ctx context.Context, alias string) (models.GetSessionResponse, error)

	// Delete removes the blob stored for alias.
	Delete(ctx context.Context, alias string) (models.DeleteSessionResponse, error)

	// Refresh resets the lifetime of the blob stored for alias.
	Refresh(ctx context.Context, alias string) (models.RefreshSessionResponse, error)

	// Status reports whether a blob exists for alias and its remaining TTL.
	Status(ctx context.Context, alias string) (models.SessionStatusResponse, error)

	// TestConnection asks the API to ping its store.
	TestConnection(ctx context.Context) (models.TestConnectionResponse, error)

	// Close releases transport resources.
	Close() error
}
