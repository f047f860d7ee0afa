package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// DefaultStoreTimeout bounds a single asynchronous post-login store.
const DefaultStoreTimeout = 10 * time.Second

type loginObserver struct {
	sessions     ClientSessionService
	storeTimeout time.Duration

	mu      sync.Mutex
	pending *models.LoginForm

	wg sync.WaitGroup

	logger *logger.Logger
}

// NewLoginObserver returns a [LoginObserver] that stores sessions through
// sessions. A non-positive storeTimeout selects [DefaultStoreTimeout].
func NewLoginObserver(sessions ClientSessionService, storeTimeout time.Duration, logger *logger.Logger) LoginObserver {
	if storeTimeout <= 0 {
		storeTimeout = DefaultStoreTimeout
	}
	return &loginObserver{sessions: sessions, storeTimeout: storeTimeout, logger: logger}
}

func (o *loginObserver) OnLoginAttempt(form models.LoginForm) {
	o.mu.Lock()
	defer o.mu.Unlock()

	form.Email = strings.TrimSpace(form.Email)
	if form.Email == "" || form.Password == "" {
		o.pending = nil
		return
	}
	o.pending = &form
}

func (o *loginObserver) OnLoginResponse(resp models.LoginResponse) {
	o.mu.Lock()
	captured := o.pending
	o.pending = nil
	o.mu.Unlock()

	if resp.Error != "" || captured == nil {
		return
	}

	alias := resp.Alias(captured.Email)
	if alias == "" {
		return
	}

	meta := map[string]any{
		MetaSignMe: captured.SignMe,
		MetaIP:     resp.ClientIP,
	}
	password := captured.Password

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), o.storeTimeout)
		defer cancel()

		if _, err := o.sessions.StoreSession(ctx, alias, password, meta); err != nil {
			o.logger.Warn().Err(err).Str("alias", alias).Msg("failed to store ephemeral session after login")
			return
		}
		o.logger.Debug().Str("alias", alias).Msg("ephemeral session stored after login")
	}()
}

func (o *loginObserver) OnUnload() {
	o.sessions.ClearSecret()
}

func (o *loginObserver) OnLogout(ctx context.Context, alias string) error {
	defer o.sessions.ClearSecret()

	if _, err := o.sessions.DeleteSession(ctx, alias); err != nil {
		o.logger.Warn().Err(err).Str("alias", alias).Msg("failed to delete ephemeral session on logout")
		return err
	}
	return nil
}

func (o *loginObserver) Wait() {
	o.wg.Wait()
}
