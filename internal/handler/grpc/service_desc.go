// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/app"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/rpc"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// SessionAPIServer is the server side of the ephemeralsessions.v1.SessionAPI
// service. Messages are plain model structs carried by the JSON codec.
type SessionAPIServer interface {
	Create(context.Context, models.CreateSessionRequest) (models.CreateSessionResponse, error)
	Get(context.Context, models.AliasRequest) (models.GetSessionResponse, error)
	Delete(context.Context, models.AliasRequest) (models.DeleteSessionResponse, error)
	Refresh(context.Context, models.AliasRequest) (models.RefreshSessionResponse, error)
	Status(context.Context, models.AliasRequest) (models.SessionStatusResponse, error)
	TestConnection(context.Context, models.TestConnectionRequest) (models.TestConnectionResponse, error)
}

var _ SessionAPIServer = (*Handler)(nil)

// ServiceDesc describes the session service for [grpc.ServiceRegistrar].
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: rpc.ServiceName,
	HandlerType: (*SessionAPIServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: rpc.MethodCreate, Handler: unaryHandler(rpc.MethodCreate, SessionAPIServer.Create)},
		{MethodName: rpc.MethodGet, Handler: unaryHandler(rpc.MethodGet, SessionAPIServer.Get)},
		{MethodName: rpc.MethodDelete, Handler: unaryHandler(rpc.MethodDelete, SessionAPIServer.Delete)},
		{MethodName: rpc.MethodRefresh, Handler: unaryHandler(rpc.MethodRefresh, SessionAPIServer.Refresh)},
		{MethodName: rpc.MethodStatus, Handler: unaryHandler(rpc.MethodStatus, SessionAPIServer.Status)},
		{MethodName: rpc.MethodTestConnection, Handler: unaryHandler(rpc.MethodTestConnection, SessionAPIServer.TestConnection)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ephemeralsessions/v1/session_api",
}

// RegisterSessionAPIServer registers srv on s.
func RegisterSessionAPIServer(s grpc.ServiceRegistrar, srv SessionAPIServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Register registers the handler on s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	RegisterSessionAPIServer(s, h)
}

// unaryHandler builds the method handler for one operation. Undecodable
// requests are rejected with InvalidArgument before reaching the service.
func unaryHandler[Req, Resp any](method string, call func(SessionAPIServer, context.Context, Req) (Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, status.Error(codes.InvalidArgument, app.MsgInvalidJSON)
		}

		handle := func(ctx context.Context, req any) (any, error) {
			resp, err := call(srv.(SessionAPIServer), ctx, *req.(*Req))
			if err != nil {
				return nil, err
			}
			return &resp, nil
		}

		if interceptor == nil {
			return handle(ctx, in)
		}
		return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: rpc.FullMethod(method)}, handle)
	}
}
