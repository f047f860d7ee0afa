package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/keymask"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/mock"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/store"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

func testStructuredConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App:     config.App{KeyMaskSecret: testSecret, KeyNamespace: "snappymail", Version: "1.0.0"},
		Session: config.Session{TTLSeconds: 600},
	}
}

func TestNewServices_FailsClosedWithoutSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testStructuredConfig()
	cfg.App.KeyMaskSecret = ""

	svcs, err := NewServices(&store.Storages{Sessions: mock.NewMockSessionStore(ctrl)}, cfg, models.AppBuildInfo{}, prometheus.NewRegistry(), logger.Nop())

	assert.Nil(t, svcs)
	assert.ErrorIs(t, err, keymask.ErrConfiguration)
}

func TestNewServices_WiresDecorators(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockSessionStore(ctrl)

	svcs, err := NewServices(&store.Storages{Sessions: st}, testStructuredConfig(), models.AppBuildInfo{}, prometheus.NewRegistry(), logger.Nop())
	require.NoError(t, err)

	// validation runs before the store is touched
	_, err = svcs.SessionService.Create(context.Background(), models.CreateSessionRequest{Alias: "a@b.c"})
	assert.ErrorIs(t, err, ErrValidation)

	st.EXPECT().SetWithTTL(gomock.Any(), gomock.Any(), gomock.Any(), 10*time.Minute).Return(true)
	ttl, err := svcs.SessionService.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, ttl)

	assert.Equal(t, "1.0.0", svcs.AppInfoService.GetAppVersion(context.Background()))
}
