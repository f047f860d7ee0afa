package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
)

// DefaultRefreshInterval is used when Start is given a non-positive interval.
const DefaultRefreshInterval = 5 * time.Minute

type clientRefreshJob struct {
	sessions ClientSessionService
	logger   *logger.Logger

	// mu serializes Start and Stop; the running goroutine never takes it.
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClientRefreshJob creates a job that calls sessions.RefreshSession on a
// ticker. The job is idle until Start is called.
func NewClientRefreshJob(sessions ClientSessionService, logger *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{sessions: sessions, logger: logger}
}

// Start implements ClientRefreshJob. A previous run is stopped and waited for
// before the new one is installed, so at most one goroutine is ever running.
func (j *clientRefreshJob) Start(ctx context.Context, alias string, interval time.Duration) <-chan struct{} {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	j.cancel, j.done = cancel, done

	go j.run(jobCtx, alias, interval, done)
	return done
}

func (j *clientRefreshJob) run(ctx context.Context, alias string, interval time.Duration, done chan<- struct{}) {
	defer close(done)

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			ttl, err := j.sessions.RefreshSession(ctx, alias)
			switch {
			case errors.Is(err, ErrSessionNotFound):
				j.logger.Info().Str("alias", alias).Msg("session is gone, refresh job stops")
				return
			case err != nil:
				j.logger.Warn().Err(err).Str("alias", alias).Msg("session refresh failed")
			default:
				j.logger.Debug().Str("alias", alias).Dur("ttl", ttl).Msg("session refreshed")
			}
		}
	}
}

// Stop implements ClientRefreshJob. It blocks until the goroutine has exited
// and is a no-op when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()
}

func (j *clientRefreshJob) stopLocked() {
	if j.cancel == nil {
		return
	}

	j.cancel()
	<-j.done
	j.cancel, j.done = nil, nil
}
