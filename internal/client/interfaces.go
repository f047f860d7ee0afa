// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// Client is the set of session operations exposed to the command line.
type Client interface {
	Store(ctx context.Context, alias, password string, meta map[string]any) (time.Duration, error)
	Retrieve(ctx context.Context, alias string) (models.Credentials, error)
	Status(ctx context.Context, alias string) (time.Duration, error)
	Refresh(ctx context.Context, alias string) (time.Duration, error)
	Delete(ctx context.Context, alias string) (bool, error)
	Ping(ctx context.Context) (string, error)
	KeepAlive(ctx context.Context, alias string) error
	UseSecret(secret string)
	Secret() string
	Close() error
}
