package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// SessionService composes key masking and the session store. It never sees
// plaintext credentials: blobs are opaque and stored verbatim.
type SessionService interface {
	// Create stores the encrypted blob under the masked alias and returns the
	// effective TTL.
	Create(ctx context.Context, req models.CreateSessionRequest) (time.Duration, error)
	// Get returns the blob stored for alias or ErrSessionNotFound.
	Get(ctx context.Context, alias string) (models.SessionBlob, error)
	// Delete reports whether a blob was removed.
	Delete(ctx context.Context, alias string) (bool, error)
	// Refresh resets the TTL of an existing blob and returns it.
	Refresh(ctx context.Context, alias string) (time.Duration, error)
	// Status returns the remaining TTL of the blob stored for alias.
	Status(ctx context.Context, alias string) (time.Duration, error)
	// TestConnection reports ErrStoreUnavailable when the store cannot be
	// reached.
	TestConnection(ctx context.Context) error
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// SessionServiceWrapper defines middleware composition for SessionService.
// Implementations wrap an existing SessionService to add behavior such as
// validation or metrics.
type SessionServiceWrapper interface {
	Wrap(SessionService) SessionService // returns a decorated SessionService applying additional behavior
}
