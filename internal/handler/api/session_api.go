// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/app"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/service"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

const (
	opCreate         = "create"
	opGet            = "get"
	opDelete         = "delete"
	opRefresh        = "refresh"
	opStatus         = "status"
	opTestConnection = "test_connection"
)

var errPanic = errors.New("panic in session API")

// SessionAPI answers the six session operations with structured responses.
type SessionAPI struct {
	sessions service.SessionService
	logger   *logger.Logger
}

func NewSessionAPI(sessions service.SessionService, logger *logger.Logger) *SessionAPI {
	return &SessionAPI{sessions: sessions, logger: logger}
}

func (a *SessionAPI) Create(ctx context.Context, req models.CreateSessionRequest) (resp models.CreateSessionResponse) {
	defer a.recoverInto(ctx, opCreate, req.Alias, &resp.Result)

	ttl, err := a.sessions.Create(ctx, req)
	if err != nil {
		return models.CreateSessionResponse{Result: a.failure(ctx, opCreate, req.Alias, err)}
	}

	return models.CreateSessionResponse{Result: models.Result{Success: true}, TTL: toSeconds(ttl)}
}

func (a *SessionAPI) Get(ctx context.Context, req models.AliasRequest) (resp models.GetSessionResponse) {
	defer a.recoverInto(ctx, opGet, req.Alias, &resp.Result)

	blob, err := a.sessions.Get(ctx, req.Alias)
	if err != nil {
		return models.GetSessionResponse{Result: a.failure(ctx, opGet, req.Alias, err)}
	}

	return models.GetSessionResponse{Result: models.Result{Success: true}, Session: models.NewSessionView(blob)}
}

// Delete reports success only when a session existed and was removed.
func (a *SessionAPI) Delete(ctx context.Context, req models.AliasRequest) (resp models.DeleteSessionResponse) {
	defer a.recoverInto(ctx, opDelete, req.Alias, &resp.Result)

	removed, err := a.sessions.Delete(ctx, req.Alias)
	if err != nil {
		return models.DeleteSessionResponse{Result: a.failure(ctx, opDelete, req.Alias, err)}
	}

	return models.DeleteSessionResponse{Result: models.Result{Success: removed}}
}

// Refresh answers success=false without an error message when there was
// nothing to refresh.
func (a *SessionAPI) Refresh(ctx context.Context, req models.AliasRequest) (resp models.RefreshSessionResponse) {
	defer a.recoverInto(ctx, opRefresh, req.Alias, &resp.Result)

	ttl, err := a.sessions.Refresh(ctx, req.Alias)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return models.RefreshSessionResponse{}
	case err != nil:
		return models.RefreshSessionResponse{Result: a.failure(ctx, opRefresh, req.Alias, err)}
	}

	return models.RefreshSessionResponse{Result: models.Result{Success: true}, TTL: toSeconds(ttl)}
}

func (a *SessionAPI) Status(ctx context.Context, req models.AliasRequest) (resp models.SessionStatusResponse) {
	defer a.recoverInto(ctx, opStatus, req.Alias, &resp.Result)

	remaining, err := a.sessions.Status(ctx, req.Alias)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return models.SessionStatusResponse{Message: app.MsgSessionNotFound}
	case err != nil:
		return models.SessionStatusResponse{Result: a.failure(ctx, opStatus, req.Alias, err)}
	}

	return models.SessionStatusResponse{
		Result:       models.Result{Success: true},
		Exists:       true,
		TTLRemaining: toSeconds(remaining),
	}
}

func (a *SessionAPI) TestConnection(ctx context.Context, _ models.TestConnectionRequest) (resp models.TestConnectionResponse) {
	defer a.recoverInto(ctx, opTestConnection, "", &resp.Result)

	if err := a.sessions.TestConnection(ctx); err != nil {
		a.failure(ctx, opTestConnection, "", err)
		return models.TestConnectionResponse{Message: app.MsgConnectionFailed}
	}

	return models.TestConnectionResponse{Result: models.Result{Success: true}, Message: app.MsgConnectionSuccessful}
}

// failure logs err and converts it to a failed result. Only the operation and
// alias are logged, never blob contents.
func (a *SessionAPI) failure(ctx context.Context, op, alias string, err error) models.Result {
	log := logger.FromContextOr(ctx, a.logger)

	if isExpected(err) {
		log.Debug().Err(err).Str("op", op).Str("alias", alias).Msg("session request rejected")
	} else {
		log.Error().Err(err).Str("op", op).Str("alias", alias).Msg("session request failed")
	}

	return models.Result{Error: messageFromError(op, err)}
}

func (a *SessionAPI) recoverInto(ctx context.Context, op, alias string, result *models.Result) {
	if r := recover(); r != nil {
		*result = a.failure(ctx, op, alias, fmt.Errorf("%w: %v", errPanic, r))
	}
}

func toSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
