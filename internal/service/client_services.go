package service

import (
	"github.com/MKhiriev/go-ephemeral-sessions/internal/adapter"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/crypto"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
)

// ClientServices groups everything a client process needs to take part in
// the ephemeral session scheme.
type ClientServices struct {
	SessionService ClientSessionService
	LoginObserver  LoginObserver
	RefreshJob     ClientRefreshJob
}

// NewClientServices builds the client services on top of api. The ephemeral
// secret lives in storage for as long as the process does.
func NewClientServices(api adapter.SessionAPIClient, storage crypto.VolatileStorage, cfg config.ClientConfig, userAgent string, logger *logger.Logger) *ClientServices {
	sessions := NewClientSessionService(
		api,
		crypto.NewSessionCipher(cfg.Crypto.PBKDF2Iterations),
		crypto.NewSecretKeeper(storage),
		userAgent,
		logger,
	)

	return &ClientServices{
		SessionService: sessions,
		LoginObserver:  NewLoginObserver(sessions, cfg.Adapter.RequestTimeout, logger),
		RefreshJob:     NewClientRefreshJob(sessions, logger),
	}
}
