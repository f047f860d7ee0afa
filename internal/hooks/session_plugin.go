package hooks

import (
	"context"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// AppDataKey is the app data entry announcing the session feature to the
// browser.
const AppDataKey = "RedisEphemeralSessions"

// SessionPlugin announces ephemeral sessions to the host application.
type SessionPlugin struct {
	ttlSeconds int
	logger     *logger.Logger
}

func NewSessionPlugin(cfg config.Session, logger *logger.Logger) *SessionPlugin {
	return &SessionPlugin{ttlSeconds: cfg.TTLSeconds, logger: logger}
}

func (p *SessionPlugin) Name() string {
	return "redis-ephemeral-sessions"
}

func (p *SessionPlugin) Register(d *Dispatcher) {
	d.RegisterLoginSuccess(p.Name(), p.onLoginSuccess)
	d.RegisterFilterAppData(p.Name(), p.filterAppData)
}

// onLoginSuccess only logs: the session itself is created by the client.
func (p *SessionPlugin) onLoginSuccess(ctx context.Context, account models.Account) Outcome {
	logger.FromContextOr(ctx, p.logger).Info().Str("alias", account.Email).Msg("login success")
	return Done()
}

func (p *SessionPlugin) filterAppData(_ context.Context, isAdmin bool, data map[string]any) Outcome {
	if isAdmin {
		return Done()
	}
	if data == nil {
		return Failed(ErrNilAppData)
	}

	data[AppDataKey] = map[string]any{
		"enabled": true,
		"ttl":     p.ttlSeconds,
	}
	return Changed()
}
