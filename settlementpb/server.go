package settlementpb

import (
	"context"

	"google.golang.org/grpc"
)

// SettlementServer is the host-side contract for the Settlement service. The production implementation lives
// in the host process; this module only needs it to stand up an in-process fake for settlement_client_test.go.
type SettlementServer interface {
	Complete(context.Context, *CompleteRequest) (*Empty, error)
	Abandon(context.Context, *AbandonRequest) (*Empty, error)
	Deadletter(context.Context, *DeadletterRequest) (*Empty, error)
	Defer(context.Context, *DeferRequest) (*Empty, error)
	RenewMessageLock(context.Context, *RenewMessageLockRequest) (*Empty, error)
	SetSessionState(context.Context, *SetSessionStateRequest) (*Empty, error)
	ReleaseSession(context.Context, *ReleaseSessionRequest) (*Empty, error)
	RenewSessionLock(context.Context, *RenewSessionLockRequest) (*RenewSessionLockResponse, error)
}

// RegisterSettlementServer registers srv's implementation of the Settlement service on s.
func RegisterSettlementServer(s grpc.ServiceRegistrar, srv SettlementServer) {
	s.RegisterService(&settlementServiceDesc, srv)
}

func completeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SettlementServer).Complete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodComplete}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SettlementServer).Complete(ctx, req.(*CompleteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func abandonHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AbandonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SettlementServer).Abandon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodAbandon}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SettlementServer).Abandon(ctx, req.(*AbandonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deadletterHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeadletterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SettlementServer).Deadletter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodDeadletter}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SettlementServer).Deadletter(ctx, req.(*DeadletterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deferHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SettlementServer).Defer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodDefer}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SettlementServer).Defer(ctx, req.(*DeferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func renewMessageLockHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenewMessageLockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SettlementServer).RenewMessageLock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodRenewMessageLock}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SettlementServer).RenewMessageLock(ctx, req.(*RenewMessageLockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func setSessionStateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetSessionStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SettlementServer).SetSessionState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSetSessionState}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SettlementServer).SetSessionState(ctx, req.(*SetSessionStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func releaseSessionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReleaseSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SettlementServer).ReleaseSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodReleaseSession}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SettlementServer).ReleaseSession(ctx, req.(*ReleaseSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func renewSessionLockHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenewSessionLockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SettlementServer).RenewSessionLock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodRenewSessionLock}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SettlementServer).RenewSessionLock(ctx, req.(*RenewSessionLockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var settlementServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*SettlementServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Complete", Handler: completeHandler},
		{MethodName: "Abandon", Handler: abandonHandler},
		{MethodName: "Deadletter", Handler: deadletterHandler},
		{MethodName: "Defer", Handler: deferHandler},
		{MethodName: "RenewMessageLock", Handler: renewMessageLockHandler},
		{MethodName: "SetSessionState", Handler: setSessionStateHandler},
		{MethodName: "ReleaseSession", Handler: releaseSessionHandler},
		{MethodName: "RenewSessionLock", Handler: renewSessionLockHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "settlement.proto",
}
