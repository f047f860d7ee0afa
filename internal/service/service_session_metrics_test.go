package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/mock"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

func TestSessionMetricsService_CountsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockSessionService(ctrl)

	metrics, err := NewSessionMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	svc := NewSessionMetricsService(metrics).Wrap(inner)
	ctx := context.Background()

	gomock.InOrder(
		inner.EXPECT().Create(ctx, gomock.Any()).Return(time.Hour, nil),
		inner.EXPECT().Get(ctx, "a").Return(models.SessionBlob{}, ErrSessionNotFound),
		inner.EXPECT().Get(ctx, "").Return(models.SessionBlob{}, fmt.Errorf("%w: empty", ErrValidation)),
		inner.EXPECT().Delete(ctx, "a").Return(true, nil),
		inner.EXPECT().Refresh(ctx, "a").Return(time.Duration(0), ErrSessionNotFound),
		inner.EXPECT().Status(ctx, "a").Return(time.Minute, nil),
		inner.EXPECT().TestConnection(ctx).Return(ErrStoreUnavailable),
	)

	_, _ = svc.Create(ctx, models.CreateSessionRequest{})
	_, _ = svc.Get(ctx, "a")
	_, _ = svc.Get(ctx, "")
	_, _ = svc.Delete(ctx, "a")
	_, _ = svc.Refresh(ctx, "a")
	_, _ = svc.Status(ctx, "a")
	_ = svc.TestConnection(ctx)

	ops := metrics.operations
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("create", resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("get", resultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("get", resultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("delete", resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("refresh", resultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("status", resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ops.WithLabelValues("test_connection", resultError)))
	assert.Equal(t, 6, testutil.CollectAndCount(metrics.duration))
}

func TestNewSessionMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewSessionMetrics(reg)
	require.NoError(t, err)

	_, err = NewSessionMetrics(reg)
	assert.Error(t, err)
}
