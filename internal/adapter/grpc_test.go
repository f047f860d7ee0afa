package adapter

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/rpc"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/utils"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fakeSessionAPI struct {
	lastTraceID string
}

func unary[Req any](handle func(ctx context.Context, req Req) (any, error)) grpc.MethodHandler {
	return func(_ any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
		var req Req
		if err := dec(&req); err != nil {
			return nil, err
		}
		return handle(ctx, req)
	}
}

func (f *fakeSessionAPI) desc() *grpc.ServiceDesc {
	return &grpc.ServiceDesc{
		ServiceName: rpc.ServiceName,
		HandlerType: (*any)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: rpc.MethodCreate, Handler: unary(func(ctx context.Context, req models.CreateSessionRequest) (any, error) {
				if md, ok := metadata.FromIncomingContext(ctx); ok {
					if ids := md.Get("x-trace-id"); len(ids) > 0 {
						f.lastTraceID = ids[0]
					}
				}
				if req.Alias == "" {
					return models.CreateSessionResponse{Result: models.Result{Error: "Missing required parameters"}}, nil
				}
				return models.CreateSessionResponse{Result: models.Result{Success: true}, TTL: 14400}, nil
			})},
			{MethodName: rpc.MethodGet, Handler: unary(func(_ context.Context, req models.AliasRequest) (any, error) {
				return models.GetSessionResponse{
					Result:  models.Result{Success: true},
					Session: &models.SessionView{Ciphertext: req.Alias, Meta: map[string]any{}},
				}, nil
			})},
			{MethodName: rpc.MethodDelete, Handler: unary(func(_ context.Context, _ models.AliasRequest) (any, error) {
				return models.DeleteSessionResponse{Result: models.Result{Success: true}}, nil
			})},
			{MethodName: rpc.MethodRefresh, Handler: unary(func(_ context.Context, _ models.AliasRequest) (any, error) {
				return nil, status.Error(codes.Internal, "boom")
			})},
			{MethodName: rpc.MethodStatus, Handler: unary(func(_ context.Context, _ models.AliasRequest) (any, error) {
				time.Sleep(200 * time.Millisecond)
				return models.SessionStatusResponse{Result: models.Result{Success: true}}, nil
			})},
			{MethodName: rpc.MethodTestConnection, Handler: unary(func(_ context.Context, _ models.TestConnectionRequest) (any, error) {
				return models.TestConnectionResponse{Result: models.Result{Success: true}, Message: "Redis connection successful"}, nil
			})},
		},
	}
}

func newBufconnClient(t *testing.T, api *fakeSessionAPI, timeout time.Duration) SessionAPIClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	srv.RegisterService(api.desc(), api)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	client, err := NewGRPCSessionClient(
		config.ClientAdapter{GRPCAddress: "passthrough:///bufnet", RequestTimeout: timeout},
		logger.Nop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestGRPC_RoundTrips(t *testing.T) {
	api := &fakeSessionAPI{}
	client := newBufconnClient(t, api, 2*time.Second)
	ctx := utils.WithTraceID(context.Background(), "trace-grpc")

	created, err := client.Create(ctx, models.CreateSessionRequest{Alias: "a@b.c", Ciphertext: "c", IV: "i", Salt: "s"})
	require.NoError(t, err)
	assert.True(t, created.Success)
	assert.Equal(t, int64(14400), created.TTL)
	assert.Equal(t, "trace-grpc", api.lastTraceID)

	invalid, err := client.Create(context.Background(), models.CreateSessionRequest{})
	require.NoError(t, err)
	assert.False(t, invalid.Success)
	assert.Equal(t, "Missing required parameters", invalid.Error)

	got, err := client.Get(ctx, "a@b.c")
	require.NoError(t, err)
	require.NotNil(t, got.Session)
	assert.Equal(t, "a@b.c", got.Session.Ciphertext)

	deleted, err := client.Delete(ctx, "a@b.c")
	require.NoError(t, err)
	assert.True(t, deleted.Success)

	conn, err := client.TestConnection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Redis connection successful", conn.Message)
}

func TestGRPC_StatusErrorsAreMapped(t *testing.T) {
	client := newBufconnClient(t, &fakeSessionAPI{}, 2*time.Second)

	_, err := client.Refresh(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestGRPC_RequestTimeout(t *testing.T) {
	client := newBufconnClient(t, &fakeSessionAPI{}, 50*time.Millisecond)

	_, err := client.Status(context.Background(), "a@b.c")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestNewGRPCSessionClient_EmptyAddress(t *testing.T) {
	_, err := NewGRPCSessionClient(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestMapGRPCError(t *testing.T) {
	tests := []struct {
		code codes.Code
		want error
	}{
		{codes.InvalidArgument, ErrBadRequest},
		{codes.Unimplemented, ErrNotFound},
		{codes.DeadlineExceeded, ErrTimeout},
		{codes.Unavailable, ErrUnavailable},
		{codes.Unknown, ErrInternalServerError},
		{codes.PermissionDenied, ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.ErrorIs(t, mapGRPCError("op", status.Error(tt.code, "x")), tt.want)
		})
	}

	assert.ErrorIs(t, mapGRPCError("op", context.DeadlineExceeded), ErrTimeout)
}
