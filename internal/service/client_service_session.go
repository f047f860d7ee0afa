// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/adapter"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/crypto"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// Meta keys added by StoreSession and by the login observer.
const (
	MetaUserAgent = "userAgent"
	MetaTimestamp = "timestamp"
	MetaSignMe    = "signMe"
	MetaIP        = "ip"
)

type clientSessionService struct {
	api    adapter.SessionAPIClient
	cipher crypto.SessionCipher
	keeper crypto.SecretKeeper

	userAgent string
	now       func() time.Time

	logger *logger.Logger
}

// NewClientSessionService wires the API client with the local cipher and
// secret keeper. userAgent is recorded in the meta of every stored session.
func NewClientSessionService(
	api adapter.SessionAPIClient,
	cipher crypto.SessionCipher,
	keeper crypto.SecretKeeper,
	userAgent string,
	logger *logger.Logger,
) ClientSessionService {
	return &clientSessionService{
		api:       api,
		cipher:    cipher,
		keeper:    keeper,
		userAgent: userAgent,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientSessionService) StoreSession(ctx context.Context, alias, password string, meta map[string]any) (time.Duration, error) {
	secret, err := s.keeper.GetOrCreateSecret()
	if err != nil {
		return 0, fmt.Errorf("store session: %w", err)
	}

	enriched := map[string]any{
		MetaUserAgent: s.userAgent,
		MetaTimestamp: s.now().UnixMilli(),
	}
	maps.Copy(enriched, meta)

	encrypted, err := s.cipher.Encrypt(secret, models.Credentials{Alias: alias, Password: password, Meta: enriched})
	if err != nil {
		return 0, fmt.Errorf("store session: encrypt: %w", err)
	}

	resp, err := s.api.Create(ctx, models.CreateSessionRequest{
		Alias:      alias,
		Ciphertext: encrypted.Ciphertext,
		IV:         encrypted.IV,
		Salt:       encrypted.Salt,
		Meta:       enriched,
	})
	if err != nil {
		return 0, fmt.Errorf("store session: %w", err)
	}
	if !resp.Success {
		return 0, mapAPIFailure(resp.Error)
	}

	logger.FromContextOr(ctx, s.logger).Debug().Str("alias", alias).Int64("ttl", resp.TTL).Msg("session stored")
	return seconds(resp.TTL), nil
}

func (s *clientSessionService) RetrieveSession(ctx context.Context, alias string) (models.Credentials, error) {
	secret, err := s.keeper.GetOrCreateSecret()
	if err != nil {
		return models.Credentials{}, fmt.Errorf("retrieve session: %w", err)
	}

	resp, err := s.api.Get(ctx, alias)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("retrieve session: %w", err)
	}
	if !resp.Success {
		return models.Credentials{}, mapAPIFailure(resp.Error)
	}
	if resp.Session == nil {
		return models.Credentials{}, ErrSessionNotFound
	}

	var creds models.Credentials
	if err = s.cipher.Decrypt(secret, resp.Session.Ciphertext, resp.Session.IV, resp.Session.Salt, &creds); err != nil {
		logger.FromContextOr(ctx, s.logger).Debug().Str("alias", alias).Msg("stored session cannot be opened with the current secret")
		return models.Credentials{}, fmt.Errorf("retrieve session: %w", err)
	}

	return creds, nil
}

func (s *clientSessionService) DeleteSession(ctx context.Context, alias string) (bool, error) {
	resp, err := s.api.Delete(ctx, alias)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	if !resp.Success && resp.Error != "" {
		return false, mapAPIFailure(resp.Error)
	}
	return resp.Success, nil
}

func (s *clientSessionService) RefreshSession(ctx context.Context, alias string) (time.Duration, error) {
	resp, err := s.api.Refresh(ctx, alias)
	if err != nil {
		return 0, fmt.Errorf("refresh session: %w", err)
	}
	if !resp.Success {
		return 0, mapAPIFailure(resp.Error)
	}
	return seconds(resp.TTL), nil
}

func (s *clientSessionService) SessionStatus(ctx context.Context, alias string) (time.Duration, error) {
	resp, err := s.api.Status(ctx, alias)
	if err != nil {
		return 0, fmt.Errorf("session status: %w", err)
	}
	if !resp.Success || !resp.Exists {
		return 0, mapAPIFailure(resp.Error)
	}
	return seconds(resp.TTLRemaining), nil
}

func (s *clientSessionService) TestConnection(ctx context.Context) (string, error) {
	resp, err := s.api.TestConnection(ctx)
	if err != nil {
		return "", fmt.Errorf("test connection: %w", err)
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = resp.Error
		}
		return msg, fmt.Errorf("%w: %s", ErrStoreUnavailable, msg)
	}
	return resp.Message, nil
}

func (s *clientSessionService) ClearSecret() {
	s.keeper.ClearSecret()
}

func seconds(n int64) time.Duration {
	return time.Duration(n) * time.Second
}
