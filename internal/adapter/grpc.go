package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/rpc"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/utils"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type grpcSessionClient struct {
	conn   *grpc.ClientConn
	cfg    config.ClientAdapter
	logger *logger.Logger
}

// NewGRPCSessionClient constructs a gRPC implementation of
// [SessionAPIClient] talking to cfg.GRPCAddress. Messages use the JSON codec
// from package rpc. Extra dial options (e.g. a bufconn dialer in tests) are
// appended after the defaults. The connection is established lazily by the
// first call.
func NewGRPCSessionClient(cfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (SessionAPIClient, error) {
	target := strings.TrimSpace(cfg.GRPCAddress)
	if target == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: %w", ErrEmptyAddress)
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client: %w", err)
	}

	return &grpcSessionClient{conn: conn, cfg: cfg, logger: logger}, nil
}

func (g *grpcSessionClient) Create(ctx context.Context, req models.CreateSessionRequest) (models.CreateSessionResponse, error) {
	var resp models.CreateSessionResponse
	err := g.invoke(ctx, rpc.MethodCreate, req, &resp)
	return resp, err
}

func (g *grpcSessionClient) Get(ctx context.Context, alias string) (models.GetSessionResponse, error) {
	var resp models.GetSessionResponse
	err := g.invoke(ctx, rpc.MethodGet, models.AliasRequest{Alias: alias}, &resp)
	return resp, err
}

func (g *grpcSessionClient) Delete(ctx context.Context, alias string) (models.DeleteSessionResponse, error) {
	var resp models.DeleteSessionResponse
	err := g.invoke(ctx, rpc.MethodDelete, models.AliasRequest{Alias: alias}, &resp)
	return resp, err
}

func (g *grpcSessionClient) Refresh(ctx context.Context, alias string) (models.RefreshSessionResponse, error) {
	var resp models.RefreshSessionResponse
	err := g.invoke(ctx, rpc.MethodRefresh, models.AliasRequest{Alias: alias}, &resp)
	return resp, err
}

func (g *grpcSessionClient) Status(ctx context.Context, alias string) (models.SessionStatusResponse, error) {
	var resp models.SessionStatusResponse
	err := g.invoke(ctx, rpc.MethodStatus, models.AliasRequest{Alias: alias}, &resp)
	return resp, err
}

func (g *grpcSessionClient) TestConnection(ctx context.Context) (models.TestConnectionResponse, error) {
	var resp models.TestConnectionResponse
	err := g.invoke(ctx, rpc.MethodTestConnection, models.TestConnectionRequest{}, &resp)
	return resp, err
}

func (g *grpcSessionClient) Close() error {
	return g.conn.Close()
}

func (g *grpcSessionClient) invoke(ctx context.Context, method string, req, resp any) error {
	if g.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.RequestTimeout)
		defer cancel()
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, strings.ToLower(utils.TraceIDHeader), traceID)
	}

	if err := g.conn.Invoke(ctx, rpc.FullMethod(method), req, resp); err != nil {
		g.logger.Debug().Err(err).Str("method", method).Msg("session API call failed")
		return mapGRPCError(strings.ToLower(method), err)
	}
	return nil
}
