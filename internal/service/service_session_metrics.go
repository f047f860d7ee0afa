package service

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// Operation outcome labels.
const (
	resultOK       = "ok"
	resultInvalid  = "invalid"
	resultNotFound = "not_found"
	resultError    = "error"
)

// SessionMetrics holds the Prometheus collectors recorded by
// [SessionMetricsService].
type SessionMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewSessionMetrics creates the session collectors and registers them with
// reg.
func NewSessionMetrics(reg prometheus.Registerer) (*SessionMetrics, error) {
	m := &SessionMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ephemeral_sessions",
			Name:      "operations_total",
			Help:      "Session API operations by operation and outcome.",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ephemeral_sessions",
			Name:      "operation_duration_seconds",
			Help:      "Session API operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// SessionMetricsService records count, outcome and latency of every call to
// the wrapped service.
type SessionMetricsService struct {
	inner   SessionService
	metrics *SessionMetrics
}

func NewSessionMetricsService(metrics *SessionMetrics) SessionServiceWrapper {
	return &SessionMetricsService{metrics: metrics}
}

func (m *SessionMetricsService) observe(op string, start time.Time, err error) {
	m.metrics.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	m.metrics.operations.WithLabelValues(op, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrValidation):
		return resultInvalid
	case errors.Is(err, ErrSessionNotFound):
		return resultNotFound
	default:
		return resultError
	}
}

func (m *SessionMetricsService) Create(ctx context.Context, req models.CreateSessionRequest) (ttl time.Duration, err error) {
	defer func(start time.Time) { m.observe("create", start, err) }(time.Now())
	return m.inner.Create(ctx, req)
}

func (m *SessionMetricsService) Get(ctx context.Context, alias string) (blob models.SessionBlob, err error) {
	defer func(start time.Time) { m.observe("get", start, err) }(time.Now())
	return m.inner.Get(ctx, alias)
}

func (m *SessionMetricsService) Delete(ctx context.Context, alias string) (removed bool, err error) {
	defer func(start time.Time) { m.observe("delete", start, err) }(time.Now())
	return m.inner.Delete(ctx, alias)
}

func (m *SessionMetricsService) Refresh(ctx context.Context, alias string) (ttl time.Duration, err error) {
	defer func(start time.Time) { m.observe("refresh", start, err) }(time.Now())
	return m.inner.Refresh(ctx, alias)
}

func (m *SessionMetricsService) Status(ctx context.Context, alias string) (remaining time.Duration, err error) {
	defer func(start time.Time) { m.observe("status", start, err) }(time.Now())
	return m.inner.Status(ctx, alias)
}

func (m *SessionMetricsService) TestConnection(ctx context.Context) (err error) {
	defer func(start time.Time) { m.observe("test_connection", start, err) }(time.Now())
	return m.inner.TestConnection(ctx)
}

func (m *SessionMetricsService) Wrap(wrapper SessionService) SessionService {
	m.inner = wrapper
	return m
}
