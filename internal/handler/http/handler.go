package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/handler/api"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/hooks"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/service"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/utils"
)

type Handler struct {
	sessions *api.SessionAPI
	services *service.Services
	hooks    *hooks.Dispatcher
	gatherer prometheus.Gatherer

	requestTimeout time.Duration
	traceIDs       utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil gatherer disables /metrics.
func NewHandler(services *service.Services, dispatcher *hooks.Dispatcher, gatherer prometheus.Gatherer, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		sessions:       api.NewSessionAPI(services.SessionService, logger),
		services:       services,
		hooks:          dispatcher,
		gatherer:       gatherer,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
