package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/adapter"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/crypto"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/service"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// UserAgent is recorded in the meta of sessions stored by sessionctl.
const UserAgent = "sessionctl"

type App struct {
	services *service.ClientServices
	api      adapter.SessionAPIClient
	secrets  crypto.VolatileStorage
	interval time.Duration
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp connects to the session API selected by cfg.Adapter.
func NewApp(cfg config.ClientConfig, logger *logger.Logger) (*App, error) {
	api, err := adapter.NewSessionAPIClient(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create session API client: %w", err)
	}

	return NewAppWithAPI(api, cfg, logger), nil
}

// NewAppWithAPI builds an App over an existing API client.
func NewAppWithAPI(api adapter.SessionAPIClient, cfg config.ClientConfig, logger *logger.Logger) *App {
	secrets := crypto.NewMemoryStorage()

	return &App{
		services: service.NewClientServices(api, secrets, cfg, UserAgent, logger),
		api:      api,
		secrets:  secrets,
		interval: cfg.Workers.RefreshInterval,
		logger:   logger,
	}
}

// UseSecret seeds the volatile storage with a secret printed by an earlier
// Store, so a later process can decrypt the same session.
func (a *App) UseSecret(secret string) {
	if secret != "" {
		a.secrets.Set(crypto.SecretStorageKey, secret)
	}
}

// Secret returns the ephemeral secret currently held by the process.
func (a *App) Secret() string {
	secret, _ := a.secrets.Get(crypto.SecretStorageKey)
	return secret
}

func (a *App) Store(ctx context.Context, alias, password string, meta map[string]any) (time.Duration, error) {
	return a.services.SessionService.StoreSession(ctx, alias, password, meta)
}

func (a *App) Retrieve(ctx context.Context, alias string) (models.Credentials, error) {
	return a.services.SessionService.RetrieveSession(ctx, alias)
}

func (a *App) Status(ctx context.Context, alias string) (time.Duration, error) {
	return a.services.SessionService.SessionStatus(ctx, alias)
}

func (a *App) Refresh(ctx context.Context, alias string) (time.Duration, error) {
	return a.services.SessionService.RefreshSession(ctx, alias)
}

func (a *App) Delete(ctx context.Context, alias string) (bool, error) {
	return a.services.SessionService.DeleteSession(ctx, alias)
}

func (a *App) Ping(ctx context.Context) (string, error) {
	return a.services.SessionService.TestConnection(ctx)
}

// KeepAlive refreshes the session of alias until ctx is cancelled or the
// session disappears. It returns service.ErrSessionNotFound in the latter case
// and nil when ctx ended the run.
func (a *App) KeepAlive(ctx context.Context, alias string) error {
	done := a.services.RefreshJob.Start(ctx, alias, a.interval)

	select {
	case <-ctx.Done():
	case <-done:
	}
	a.services.RefreshJob.Stop()

	// The job only exits on its own when the session is gone.
	if ctx.Err() == nil {
		return service.ErrSessionNotFound
	}
	return nil
}

// Close forgets the secret and releases the API connection.
func (a *App) Close() error {
	a.services.SessionService.ClearSecret()
	return a.api.Close()
}
