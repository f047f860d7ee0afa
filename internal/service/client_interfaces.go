package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// ClientSessionService is the client-side contract for the ephemeral session
// API. It owns the only path by which credentials are encrypted, sent,
// fetched and decrypted; the server never sees plaintext.
type ClientSessionService interface {
	// StoreSession encrypts {alias, password, meta} under the ephemeral
	// secret and creates the remote session. meta is enriched with userAgent
	// and a millisecond timestamp; caller-supplied keys win. Returns the TTL
	// granted by the server.
	StoreSession(ctx context.Context, alias, password string, meta map[string]any) (time.Duration, error)

	// RetrieveSession fetches the blob stored for alias and decrypts it
	// locally. Returns ErrSessionNotFound when nothing is stored and
	// crypto.ErrCrypto when the blob cannot be opened with the current
	// secret.
	RetrieveSession(ctx context.Context, alias string) (models.Credentials, error)

	// DeleteSession removes the remote session and reports whether one
	// existed.
	DeleteSession(ctx context.Context, alias string) (bool, error)

	// RefreshSession extends the lifetime of the remote session.
	RefreshSession(ctx context.Context, alias string) (time.Duration, error)

	// SessionStatus returns the remaining lifetime of the remote session or
	// ErrSessionNotFound.
	SessionStatus(ctx context.Context, alias string) (time.Duration, error)

	// TestConnection asks the API to ping its store and returns the API's
	// message.
	TestConnection(ctx context.Context) (string, error)

	// ClearSecret forgets the ephemeral secret. Every stored blob becomes
	// unreadable for this client.
	ClearSecret()
}

// LoginObserver reacts to the host application's login lifecycle.
//
// Credentials are captured on the attempt and consumed by the response: a
// successful login stores them asynchronously, a failed one discards them.
// Store failures are logged and never surface to the login flow.
type LoginObserver interface {
	// OnLoginAttempt captures the submitted form. An empty alias or password
	// drops any earlier capture.
	OnLoginAttempt(form models.LoginForm)

	// OnLoginResponse consumes the capture. It never blocks on the network.
	OnLoginResponse(resp models.LoginResponse)

	// OnUnload clears the ephemeral secret.
	OnUnload()

	// OnLogout deletes the remote session for alias, then clears the secret.
	OnLogout(ctx context.Context, alias string) error

	// Wait blocks until every store started by OnLoginResponse has finished.
	Wait()
}

// ClientRefreshJob periodically refreshes the remote session while it is
// active.
type ClientRefreshJob interface {
	// Start launches the job for alias, stopping any previous run. The
	// returned channel is closed when the run exits: ctx was cancelled, Stop
	// was called, or the remote session is gone.
	Start(ctx context.Context, alias string, interval time.Duration) <-chan struct{}

	// Stop cancels the job and waits for it to exit.
	Stop()
}
