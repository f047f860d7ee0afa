package grpc

import (
	"context"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/handler/api"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/service"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/utils"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// Handler is the gRPC transport of the session API.
//
// Structured failures travel inside the response message exactly as they do
// over HTTP, so every method returns a nil error once the request was
// decoded.
type Handler struct {
	sessions *api.SessionAPI
	traceIDs utils.UUIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		sessions: api.NewSessionAPI(services.SessionService, logger),
		logger:   logger,
	}
}

func (h *Handler) Create(ctx context.Context, req models.CreateSessionRequest) (models.CreateSessionResponse, error) {
	return h.sessions.Create(ctx, req), nil
}

func (h *Handler) Get(ctx context.Context, req models.AliasRequest) (models.GetSessionResponse, error) {
	return h.sessions.Get(ctx, req), nil
}

func (h *Handler) Delete(ctx context.Context, req models.AliasRequest) (models.DeleteSessionResponse, error) {
	return h.sessions.Delete(ctx, req), nil
}

func (h *Handler) Refresh(ctx context.Context, req models.AliasRequest) (models.RefreshSessionResponse, error) {
	return h.sessions.Refresh(ctx, req), nil
}

func (h *Handler) Status(ctx context.Context, req models.AliasRequest) (models.SessionStatusResponse, error) {
	return h.sessions.Status(ctx, req), nil
}

func (h *Handler) TestConnection(ctx context.Context, req models.TestConnectionRequest) (models.TestConnectionResponse, error) {
	return h.sessions.TestConnection(ctx, req), nil
}
