package client

import (
	"context"
	"encoding/base64"
	"net"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/app"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/crypto"
	myHTTP "github.com/MKhiriev/go-ephemeral-sessions/internal/handler/http"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/hooks"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/service"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/store"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

const testTTLSeconds = 14400

func redisConfig(t *testing.T, addr string) config.Redis {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return config.Redis{
		Host:         host,
		Port:         port,
		DialTimeout:  time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolSize:     4,
	}
}

// newTestServer runs the real session stack over miniredis behind an
// httptest server and returns its URL.
func newTestServer(t *testing.T) (*miniredis.Miniredis, string) {
	t.Helper()
	mr := miniredis.RunT(t)

	cfg := config.StructuredConfig{
		App: config.App{
			KeyMaskSecret: base64.StdEncoding.EncodeToString(make([]byte, KeyMaskSecretSize)),
			KeyNamespace:  config.DefaultKeyNamespace,
			Version:       "test",
		},
		Storage: config.Storage{Redis: redisConfig(t, mr.Addr())},
		Session: config.Session{TTLSeconds: testTTLSeconds},
	}

	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, cfg, models.AppBuildInfo{}, prometheus.NewRegistry(), logger.Nop())
	require.NoError(t, err)

	dispatcher := hooks.NewDispatcher(logger.Nop())
	h := myHTTP.NewHandler(services, dispatcher, nil, time.Second, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return mr, srv.URL
}

func newTestApp(t *testing.T, url string) *App {
	t.Helper()

	a, err := NewApp(config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: url, RequestTimeout: time.Second},
		Crypto:  config.ClientCrypto{PBKDF2Iterations: 1000},
		Workers: config.ClientWorkers{RefreshInterval: 20 * time.Millisecond},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a
}

func TestApp_SessionLifecycle(t *testing.T) {
	_, url := newTestServer(t)
	a := newTestApp(t, url)
	ctx := context.Background()

	ttl, err := a.Store(ctx, "alice@example.com", "hunter2", map[string]any{"ip": "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, testTTLSeconds*time.Second, ttl)
	assert.NotEmpty(t, a.Secret())

	creds, err := a.Retrieve(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", creds.Alias)
	assert.Equal(t, "hunter2", creds.Password)
	assert.Equal(t, "10.0.0.1", creds.Meta["ip"])
	assert.Equal(t, UserAgent, creds.Meta[service.MetaUserAgent])

	remaining, err := a.Status(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Positive(t, remaining)

	refreshed, err := a.Refresh(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, testTTLSeconds*time.Second, refreshed)

	deleted, err := a.Delete(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = a.Retrieve(ctx, "alice@example.com")
	require.ErrorIs(t, err, service.ErrSessionNotFound)

	deleted, err = a.Delete(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestApp_SecretHandOver(t *testing.T) {
	_, url := newTestServer(t)
	ctx := context.Background()

	first := newTestApp(t, url)
	_, err := first.Store(ctx, "bob", "pa55", nil)
	require.NoError(t, err)

	second := newTestApp(t, url)
	second.UseSecret(first.Secret())
	creds, err := second.Retrieve(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "pa55", creds.Password)

	stranger := newTestApp(t, url)
	_, err = stranger.Retrieve(ctx, "bob")
	require.ErrorIs(t, err, crypto.ErrCrypto)
}

func TestApp_UseSecretIgnoresEmpty(t *testing.T) {
	_, url := newTestServer(t)
	a := newTestApp(t, url)

	a.UseSecret("")
	assert.Empty(t, a.Secret())
}

func TestApp_Ping(t *testing.T) {
	mr, url := newTestServer(t)
	a := newTestApp(t, url)

	msg, err := a.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, app.MsgConnectionSuccessful, msg)

	mr.Close()

	msg, err = a.Ping(context.Background())
	require.ErrorIs(t, err, service.ErrStoreUnavailable)
	assert.Equal(t, app.MsgConnectionFailed, msg)
}

func TestApp_StatusOfUnknownAlias(t *testing.T) {
	_, url := newTestServer(t)
	a := newTestApp(t, url)

	_, err := a.Status(context.Background(), "nobody")
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestApp_KeepAlive(t *testing.T) {
	mr, url := newTestServer(t)
	a := newTestApp(t, url)

	_, err := a.Store(context.Background(), "carol", "secret", nil)
	require.NoError(t, err)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	mr.SetTTL(keys[0], time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	require.NoError(t, a.KeepAlive(ctx, "carol"))

	assert.Equal(t, testTTLSeconds*time.Second, mr.TTL(keys[0]))
}

func TestApp_KeepAliveStopsWhenSessionGone(t *testing.T) {
	mr, url := newTestServer(t)
	a := newTestApp(t, url)

	_, err := a.Store(context.Background(), "dave", "secret", nil)
	require.NoError(t, err)
	mr.FlushAll()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err = a.KeepAlive(ctx, "dave")

	require.ErrorIs(t, err, service.ErrSessionNotFound)
	assert.Less(t, time.Since(start), time.Second)
	assert.NoError(t, ctx.Err())
}

func TestNewApp_InvalidAddress(t *testing.T) {
	_, err := NewApp(config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: "http://[::1"},
	}, logger.Nop())
	require.Error(t, err)
}
