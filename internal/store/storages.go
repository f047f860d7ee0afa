package store

import (
	"fmt"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
)

// Storages groups the storage backends used by the service layer.
type Storages struct {
	Sessions SessionStore
}

// NewStorages builds every storage backend from cfg. Backends connect lazily,
// so this only fails on invalid configuration.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	sessions, err := NewRedisSessionStore(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating session store: %w", err)
	}

	return &Storages{Sessions: sessions}, nil
}

// Close releases all backends.
func (s *Storages) Close() error {
	if s == nil || s.Sessions == nil {
		return nil
	}
	return s.Sessions.Close()
}
