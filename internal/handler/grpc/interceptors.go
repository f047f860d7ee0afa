package grpc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/app"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/utils"
)

// traceIDMetadataKey is the incoming metadata key clients use for the trace
// id. gRPC lowercases metadata keys.
var traceIDMetadataKey = strings.ToLower(utils.TraceIDHeader)

// UnaryInterceptors returns the interceptor chain for the gRPC server,
// outermost first.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.withTraceID,
		withLogging,
		h.withRecovery,
	}
}

// withTraceID mirrors the HTTP middleware: it reuses the caller's trace id
// or issues one, sends it back as header metadata and scopes a child logger
// with the trace id and method.
func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = h.traceIDs.Generate()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID).Str("grpc_method", info.FullMethod)
	})

	ctx = utils.WithTraceID(ctx, traceID)
	return next(l.WithContext(ctx), req)
}

func withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	log := logger.FromContext(ctx)
	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// withRecovery converts a panic below the session API into an Internal
// status instead of tearing down the connection.
func (h *Handler) withRecovery(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContextOr(ctx, h.logger).Error().
				Err(fmt.Errorf("panic: %v", r)).
				Str("method", info.FullMethod).
				Msg("recovered gRPC handler panic")
			resp, err = nil, status.Error(codes.Internal, app.MsgInternalServerError)
		}
	}()

	return next(ctx, req)
}
