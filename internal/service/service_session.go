// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/keymask"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/store"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

type sessionService struct {
	sessions store.SessionStore
	masker   *keymask.Masker
	ttl      time.Duration
	now      func() time.Time

	logger *logger.Logger
}

// NewSessionService returns the core [SessionService]. Inputs are not
// validated beyond what masking requires; wrap it with
// [NewSessionValidationService] for request validation.
func NewSessionService(sessions store.SessionStore, masker *keymask.Masker, cfg config.Session, logger *logger.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		masker:   masker,
		ttl:      cfg.TTL(),
		now:      time.Now,
		logger:   logger,
	}
}

func (s *sessionService) key(alias string) (string, error) {
	key, err := s.masker.Mask(alias)
	switch {
	case errors.Is(err, keymask.ErrEmptyAlias):
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	case err != nil:
		return "", err
	}
	return key, nil
}

func (s *sessionService) Create(ctx context.Context, req models.CreateSessionRequest) (time.Duration, error) {
	key, err := s.key(req.Alias)
	if err != nil {
		return 0, err
	}

	meta := req.Meta
	if meta == nil {
		meta = map[string]any{}
	}

	now := s.now().Unix()
	blob := models.SessionBlob{
		Ciphertext:      req.Ciphertext,
		IV:              req.IV,
		Salt:            req.Salt,
		Meta:            meta,
		Timestamp:       now,
		ServerTimestamp: now,
	}

	data, err := json.Marshal(blob)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreWriteFailed, err)
	}

	if !s.sessions.SetWithTTL(ctx, key, data, s.ttl) {
		return 0, ErrStoreWriteFailed
	}

	return s.ttl, nil
}

func (s *sessionService) Get(ctx context.Context, alias string) (models.SessionBlob, error) {
	key, err := s.key(alias)
	if err != nil {
		return models.SessionBlob{}, err
	}

	data, ok := s.sessions.Get(ctx, key)
	if !ok {
		return models.SessionBlob{}, ErrSessionNotFound
	}

	var blob models.SessionBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		logger.FromContextOr(ctx, s.logger).Warn().Err(err).Str("op", "get").Msg("stored session is not decodable")
		return models.SessionBlob{}, ErrSessionNotFound
	}

	return blob, nil
}

func (s *sessionService) Delete(ctx context.Context, alias string) (bool, error) {
	key, err := s.key(alias)
	if err != nil {
		return false, err
	}

	return s.sessions.Delete(ctx, key), nil
}

func (s *sessionService) Refresh(ctx context.Context, alias string) (time.Duration, error) {
	key, err := s.key(alias)
	if err != nil {
		return 0, err
	}

	if !s.sessions.RefreshTTL(ctx, key, s.ttl) {
		return 0, ErrSessionNotFound
	}

	return s.ttl, nil
}

func (s *sessionService) Status(ctx context.Context, alias string) (time.Duration, error) {
	key, err := s.key(alias)
	if err != nil {
		return 0, err
	}

	remaining, ok := s.sessions.RemainingTTL(ctx, key)
	if !ok {
		return 0, ErrSessionNotFound
	}

	return remaining, nil
}

func (s *sessionService) TestConnection(ctx context.Context) error {
	if !s.sessions.Ping(ctx) {
		return ErrStoreUnavailable
	}
	return nil
}
