package settlementpb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	serviceName = "Settlement"

	methodComplete          = "/" + serviceName + "/Complete"
	methodAbandon           = "/" + serviceName + "/Abandon"
	methodDeadletter        = "/" + serviceName + "/Deadletter"
	methodDefer             = "/" + serviceName + "/Defer"
	methodRenewMessageLock  = "/" + serviceName + "/RenewMessageLock"
	methodSetSessionState   = "/" + serviceName + "/SetSessionState"
	methodReleaseSession    = "/" + serviceName + "/ReleaseSession"
	methodRenewSessionLock  = "/" + serviceName + "/RenewSessionLock"
)

// SettlementClient is the client-side contract for the host's Settlement service (spec.md §4.5/§6).
type SettlementClient interface {
	Complete(ctx context.Context, in *CompleteRequest, opts ...grpc.CallOption) (*Empty, error)
	Abandon(ctx context.Context, in *AbandonRequest, opts ...grpc.CallOption) (*Empty, error)
	Deadletter(ctx context.Context, in *DeadletterRequest, opts ...grpc.CallOption) (*Empty, error)
	Defer(ctx context.Context, in *DeferRequest, opts ...grpc.CallOption) (*Empty, error)
	RenewMessageLock(ctx context.Context, in *RenewMessageLockRequest, opts ...grpc.CallOption) (*Empty, error)
	SetSessionState(ctx context.Context, in *SetSessionStateRequest, opts ...grpc.CallOption) (*Empty, error)
	ReleaseSession(ctx context.Context, in *ReleaseSessionRequest, opts ...grpc.CallOption) (*Empty, error)
	RenewSessionLock(ctx context.Context, in *RenewSessionLockRequest, opts ...grpc.CallOption) (*RenewSessionLockResponse, error)
}

type settlementClient struct {
	cc grpc.ClientConnInterface
}

// NewSettlementClient wraps cc with the Settlement service's client contract.
func NewSettlementClient(cc grpc.ClientConnInterface) SettlementClient {
	return &settlementClient{cc: cc}
}

func withWireCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append(opts, grpc.CallContentSubtype(CodecName))
}

func (c *settlementClient) Complete(ctx context.Context, in *CompleteRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, methodComplete, in, out, withWireCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *settlementClient) Abandon(ctx context.Context, in *AbandonRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, methodAbandon, in, out, withWireCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *settlementClient) Deadletter(ctx context.Context, in *DeadletterRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, methodDeadletter, in, out, withWireCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *settlementClient) Defer(ctx context.Context, in *DeferRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, methodDefer, in, out, withWireCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *settlementClient) RenewMessageLock(ctx context.Context, in *RenewMessageLockRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, methodRenewMessageLock, in, out, withWireCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *settlementClient) SetSessionState(ctx context.Context, in *SetSessionStateRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, methodSetSessionState, in, out, withWireCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *settlementClient) ReleaseSession(ctx context.Context, in *ReleaseSessionRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, methodReleaseSession, in, out, withWireCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *settlementClient) RenewSessionLock(ctx context.Context, in *RenewSessionLockRequest, opts ...grpc.CallOption) (*RenewSessionLockResponse, error) {
	out := new(RenewSessionLockResponse)
	if err := c.cc.Invoke(ctx, methodRenewSessionLock, in, out, withWireCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
