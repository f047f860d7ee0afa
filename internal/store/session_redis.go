// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/redis/go-redis/v9"
)

// redisSessionStore is the Redis-backed implementation of [SessionStore].
//
// The client is created on first use and shared by all callers; go-redis
// keeps a bounded pool of PoolSize connections behind it. When the initial
// connect fails the client is discarded and the next call starts over.
type redisSessionStore struct {
	cfg    config.Redis
	logger *logger.Logger

	mu     sync.Mutex
	client *redis.Client
}

// NewRedisSessionStore validates cfg and returns a lazily connecting
// [SessionStore]. It returns [ErrMissingConnectionParams] for an empty host
// or a port outside 1..65535 without touching the network.
func NewRedisSessionStore(cfg config.Redis, logger *logger.Logger) (SessionStore, error) {
	cfg.Host = strings.TrimSpace(cfg.Host)
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: host is empty", ErrMissingConnectionParams)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: port %d is out of range", ErrMissingConnectionParams, cfg.Port)
	}

	installRedisLogger(logger)

	logger.Debug().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Bool("tls", cfg.UseTLS).
		Msg("creating redis session store")

	return &redisSessionStore{
		cfg:    cfg,
		logger: logger,
	}, nil
}

func (s *redisSessionStore) options() *redis.Options {
	opts := &redis.Options{
		Addr:          net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port)),
		Password:      s.cfg.Password,
		DB:            s.cfg.DB,
		DialTimeout:   s.cfg.DialTimeout,
		ReadTimeout:   s.cfg.ReadTimeout,
		WriteTimeout:  s.cfg.WriteTimeout,
		PoolSize:      s.cfg.PoolSize,
		MaxRetries:    -1,
		DialerRetries: 1,
	}

	if s.cfg.UseTLS {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
			ServerName: s.cfg.Host,
		}
	}

	return opts
}

// conn returns the shared client, connecting on first use.
func (s *redisSessionStore) conn(ctx context.Context) (*redis.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	client := redis.NewClient(s.options())
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	s.client = client
	return client, nil
}

func (s *redisSessionStore) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}

func (s *redisSessionStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	log := s.log(ctx)

	if ttl <= 0 {
		log.Warn().Str("op", "set").Dur("ttl", ttl).Msg("refusing to store a value without a positive ttl")
		return false
	}

	client, err := s.conn(ctx)
	if err != nil {
		log.Err(err).Str("op", "set").Msg("store unavailable")
		return false
	}

	if err := client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Err(err).Str("op", "set").Str("key", key).Msg("error writing session")
		return false
	}

	return true
}

func (s *redisSessionStore) Get(ctx context.Context, key string) ([]byte, bool) {
	log := s.log(ctx)

	client, err := s.conn(ctx)
	if err != nil {
		log.Err(err).Str("op", "get").Msg("store unavailable")
		return nil, false
	}

	value, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Err(err).Str("op", "get").Str("key", key).Msg("error reading session")
		return nil, false
	}

	return value, true
}

func (s *redisSessionStore) Delete(ctx context.Context, key string) bool {
	log := s.log(ctx)

	client, err := s.conn(ctx)
	if err != nil {
		log.Err(err).Str("op", "delete").Msg("store unavailable")
		return false
	}

	removed, err := client.Del(ctx, key).Result()
	if err != nil {
		log.Err(err).Str("op", "delete").Str("key", key).Msg("error deleting session")
		return false
	}

	return removed > 0
}

func (s *redisSessionStore) RemainingTTL(ctx context.Context, key string) (time.Duration, bool) {
	log := s.log(ctx)

	client, err := s.conn(ctx)
	if err != nil {
		log.Err(err).Str("op", "ttl").Msg("store unavailable")
		return 0, false
	}

	// TTL answers -2 for a missing key and -1 for a key without expiry.
	ttl, err := client.TTL(ctx, key).Result()
	if err != nil {
		log.Err(err).Str("op", "ttl").Str("key", key).Msg("error reading session ttl")
		return 0, false
	}
	if ttl < 0 {
		return 0, false
	}

	return ttl, true
}

func (s *redisSessionStore) RefreshTTL(ctx context.Context, key string, ttl time.Duration) bool {
	log := s.log(ctx)

	if ttl <= 0 {
		log.Warn().Str("op", "expire").Dur("ttl", ttl).Msg("refusing to refresh with a non-positive ttl")
		return false
	}

	client, err := s.conn(ctx)
	if err != nil {
		log.Err(err).Str("op", "expire").Msg("store unavailable")
		return false
	}

	ok, err := client.Expire(ctx, key, ttl).Result()
	if err != nil {
		log.Err(err).Str("op", "expire").Str("key", key).Msg("error refreshing session ttl")
		return false
	}

	return ok
}

func (s *redisSessionStore) Ping(ctx context.Context) bool {
	log := s.log(ctx)

	client, err := s.conn(ctx)
	if err != nil {
		log.Err(err).Str("op", "ping").Msg("store unavailable")
		return false
	}

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("op", "ping").Msg("store ping failed")
		return false
	}

	return true
}

func (s *redisSessionStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	err := s.client.Close()
	s.client = nil
	return err
}
