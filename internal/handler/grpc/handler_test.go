package grpc

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/adapter"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/app"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/mock"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/rpc"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/service"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/utils"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

type testServer struct {
	sessions *mock.MockSessionService
	listener *bufconn.Listener
	logs     *bytes.Buffer
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		sessions: mock.NewMockSessionService(gomock.NewController(t)),
		listener: bufconn.Listen(1 << 20),
		logs:     &bytes.Buffer{},
	}

	h := NewHandler(&service.Services{SessionService: ts.sessions}, logger.NewLoggerWithWriter("test", ts.logs))
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryInterceptors()...))
	h.Register(srv)

	go func() { _ = srv.Serve(ts.listener) }()
	t.Cleanup(srv.Stop)

	return ts
}

func (ts *testServer) dialer() grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return ts.listener.DialContext(ctx)
	})
}

func (ts *testServer) client(t *testing.T) adapter.SessionAPIClient {
	t.Helper()

	c, err := adapter.NewGRPCSessionClient(
		config.ClientAdapter{GRPCAddress: "passthrough:///bufnet", RequestTimeout: 2 * time.Second},
		logger.Nop(),
		ts.dialer(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestHandler_RoundTrip(t *testing.T) {
	ts := startTestServer(t)
	client := ts.client(t)
	ctx := utils.WithTraceID(context.Background(), "trace-grpc")

	req := models.CreateSessionRequest{Alias: "a@x", Ciphertext: "Y3Q=", IV: "aXY=", Salt: "c2FsdA=="}
	ts.sessions.EXPECT().Create(gomock.Any(), req).DoAndReturn(func(ctx context.Context, _ models.CreateSessionRequest) (time.Duration, error) {
		traceID, ok := utils.GetTraceIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "trace-grpc", traceID)
		return 4 * time.Hour, nil
	})
	ts.sessions.EXPECT().Get(gomock.Any(), "a@x").Return(models.SessionBlob{Ciphertext: "Y3Q=", IV: "aXY=", Salt: "c2FsdA==", Timestamp: 1}, nil)
	ts.sessions.EXPECT().Delete(gomock.Any(), "a@x").Return(true, nil)
	ts.sessions.EXPECT().Refresh(gomock.Any(), "a@x").Return(time.Duration(0), service.ErrSessionNotFound)
	ts.sessions.EXPECT().Status(gomock.Any(), "a@x").Return(time.Duration(0), service.ErrSessionNotFound)
	ts.sessions.EXPECT().TestConnection(gomock.Any()).Return(service.ErrStoreUnavailable)

	created, err := client.Create(ctx, req)
	require.NoError(t, err)
	assert.True(t, created.Success)
	assert.Equal(t, int64(14400), created.TTL)

	got, err := client.Get(ctx, "a@x")
	require.NoError(t, err)
	require.NotNil(t, got.Session)
	assert.Equal(t, "Y3Q=", got.Session.Ciphertext)

	deleted, err := client.Delete(ctx, "a@x")
	require.NoError(t, err)
	assert.True(t, deleted.Success)

	refreshed, err := client.Refresh(ctx, "a@x")
	require.NoError(t, err)
	assert.False(t, refreshed.Success)
	assert.Empty(t, refreshed.Error)

	st, err := client.Status(ctx, "a@x")
	require.NoError(t, err)
	assert.False(t, st.Exists)
	assert.Equal(t, app.MsgSessionNotFound, st.Message)

	conn, err := client.TestConnection(ctx)
	require.NoError(t, err)
	assert.False(t, conn.Success)
	assert.Equal(t, app.MsgConnectionFailed, conn.Message)

	assert.Contains(t, ts.logs.String(), `"trace_id":"trace-grpc"`)
	assert.Contains(t, ts.logs.String(), `"grpc_method":"/ephemeralsessions.v1.SessionAPI/Create"`)
}

func TestHandler_TraceIDHeaderIsReturned(t *testing.T) {
	ts := startTestServer(t)
	ts.sessions.EXPECT().TestConnection(gomock.Any()).Return(nil)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
		ts.dialer(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	var header metadata.MD
	var resp models.TestConnectionResponse
	err = conn.Invoke(context.Background(), rpc.FullMethod(rpc.MethodTestConnection), models.TestConnectionRequest{}, &resp, grpc.Header(&header))
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.Len(t, header.Get(traceIDMetadataKey), 1)
	assert.NotEmpty(t, header.Get(traceIDMetadataKey)[0])
}

func TestHandler_UndecodableRequest_InvalidArgument(t *testing.T) {
	ts := startTestServer(t)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
		ts.dialer(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	var resp models.GetSessionResponse
	err = conn.Invoke(context.Background(), rpc.FullMethod(rpc.MethodGet), map[string]any{"alias": 42}, &resp)

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestWithRecovery(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	info := &grpc.UnaryServerInfo{FullMethod: rpc.FullMethod(rpc.MethodGet)}

	resp, err := h.withRecovery(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("boom")
	})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestWithLogging_LogsStatusCode(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLoggerWithWriter("test", &buf)
	ctx := l.WithContext(context.Background())
	info := &grpc.UnaryServerInfo{FullMethod: rpc.FullMethod(rpc.MethodStatus)}

	_, err := withLogging(ctx, nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.InvalidArgument, "bad")
	})

	require.Error(t, err)
	assert.Contains(t, buf.String(), `"code":"InvalidArgument"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
