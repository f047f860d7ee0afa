package service

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/keymask"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/store"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

type Services struct {
	SessionService SessionService
	AppInfoService AppInfoService
}

// NewServices builds the server-side services. It fails closed: without a
// usable key mask secret no session service is created.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, reg prometheus.Registerer, logger *logger.Logger) (*Services, error) {
	masker, err := keymask.New(cfg.App.KeyMaskSecret, cfg.App.KeyNamespace)
	if err != nil {
		return nil, fmt.Errorf("error creating key masker: %w", err)
	}

	metrics, err := NewSessionMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("error registering session metrics: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	sessions := NewSessionService(storages.Sessions, masker, cfg.Session, logger)
	sessions = NewSessionValidationService().Wrap(sessions)
	sessions = NewSessionMetricsService(metrics).Wrap(sessions)

	return &Services{
		SessionService: sessions,
		AppInfoService: appInfo,
	}, nil
}
