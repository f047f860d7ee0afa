// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
)

var redisLoggerOnce sync.Once

// redisLogger routes go-redis internal messages (pool and dial failures)
// into zerolog instead of the standard log package.
type redisLogger struct {
	log *logger.Logger
}

func (l redisLogger) Printf(ctx context.Context, format string, v ...any) {
	logger.FromContextOr(ctx, l.log).Warn().
		Str("component", "go-redis").
		Msgf(format, v...)
}

// installRedisLogger replaces the process-wide go-redis logger. Only the
// first call has an effect.
func installRedisLogger(log *logger.Logger) {
	redisLoggerOnce.Do(func() {
		redis.SetLogger(redisLogger{log: log})
	})
}
