package servicebus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/Azure/azure-functions-go-worker-extensions/settlementpb"
)

// SettlementClient is C6: the process-wide client that issues settlement RPCs against the host's Settlement
// service. It must survive across invocations, so it is obtained through GetSettlementClient rather than
// constructed directly.
type SettlementClient struct {
	raw  settlementpb.SettlementClient
	conn *grpc.ClientConn
}

var (
	settlementOnce     sync.Once
	settlementInstance *SettlementClient
	settlementInitErr  error
)

// GetSettlementClient returns the process-wide settlement client, dialing the host's gRPC channel on first
// use. args is the process argument vector parsed per §6; concurrent callers all observe the same dial.
func GetSettlementClient(args []string) (*SettlementClient, error) {
	settlementOnce.Do(func() {
		settlementInstance, settlementInitErr = newSettlementClient(args)
	})
	if settlementInitErr != nil {
		return nil, settlementInitErr
	}
	return settlementInstance, nil
}

func newSettlementClient(args []string) (*SettlementClient, error) {
	cfg, err := ParseTransportArgs(args)
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(
		fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(cfg.MaxMessageLength),
			grpc.MaxCallSendMsgSize(cfg.MaxMessageLength),
		),
	)
	if err != nil {
		return nil, err
	}

	logger.V(1).Info("dialed settlement channel", "host", cfg.Host, "port", cfg.Port)
	return &SettlementClient{
		raw:  settlementpb.NewSettlementClient(conn),
		conn: conn,
	}, nil
}

// resetSettlementClientForTests drops the process-wide settlement client singleton. Unexported: must not be
// reachable from production code, per spec.md §9's design note on singleton lifecycle.
func resetSettlementClientForTests() {
	settlementOnce = sync.Once{}
	settlementInstance = nil
	settlementInitErr = nil
}

// Complete notifies the host the message was handled successfully and should be removed from the queue.
func (c *SettlementClient) Complete(ctx context.Context, msg *ReceivedMessage) error {
	if msg.LockToken == "" {
		return ErrArgumentError{Field: "lockToken"}
	}
	_, err := c.raw.Complete(ctx, &settlementpb.CompleteRequest{LockToken: msg.LockToken})
	return err
}

// Abandon notifies the host the message should be re-queued for delivery, optionally updating properties.
func (c *SettlementClient) Abandon(ctx context.Context, msg *ReceivedMessage, props map[string]interface{}) error {
	if msg.LockToken == "" {
		return ErrArgumentError{Field: "lockToken"}
	}
	encoded, err := EncodeAMQPPropertiesForOperation(props, "abandon")
	if err != nil {
		return err
	}
	_, err = c.raw.Abandon(ctx, &settlementpb.AbandonRequest{
		LockToken:          msg.LockToken,
		PropertiesToModify: encoded,
	})
	return err
}

// Deadletter notifies the host the message failed and should move to the dead-letter queue, with an optional
// reason and description.
func (c *SettlementClient) Deadletter(ctx context.Context, msg *ReceivedMessage, props map[string]interface{}, reason, description string) error {
	if msg.LockToken == "" {
		return ErrArgumentError{Field: "lockToken"}
	}
	encoded, err := EncodeAMQPPropertiesForOperation(props, "deadletter")
	if err != nil {
		return err
	}
	req := &settlementpb.DeadletterRequest{
		LockToken:          msg.LockToken,
		PropertiesToModify: encoded,
	}
	if reason != "" {
		req.DeadletterReason = &settlementpb.StringValue{Value: reason}
	}
	if description != "" {
		req.DeadletterErrorDescription = &settlementpb.StringValue{Value: description}
	}
	_, err = c.raw.Deadletter(ctx, req)
	return err
}

// Defer notifies the host the message should move to the deferred sub-queue, optionally updating properties.
func (c *SettlementClient) Defer(ctx context.Context, msg *ReceivedMessage, props map[string]interface{}) error {
	if msg.LockToken == "" {
		return ErrArgumentError{Field: "lockToken"}
	}
	encoded, err := EncodeAMQPPropertiesForOperation(props, "defer")
	if err != nil {
		return err
	}
	_, err = c.raw.Defer(ctx, &settlementpb.DeferRequest{
		LockToken:          msg.LockToken,
		PropertiesToModify: encoded,
	})
	return err
}

// RenewMessageLock asks the host to extend the lock held on msg.
func (c *SettlementClient) RenewMessageLock(ctx context.Context, msg *ReceivedMessage) error {
	if msg.LockToken == "" {
		return ErrArgumentError{Field: "lockToken"}
	}
	_, err := c.raw.RenewMessageLock(ctx, &settlementpb.RenewMessageLockRequest{LockToken: msg.LockToken})
	return err
}

// SetSessionState asks the host to persist state as the session state blob for sessionID.
func (c *SettlementClient) SetSessionState(ctx context.Context, sessionID string, state []byte) error {
	if sessionID == "" {
		return ErrArgumentError{Field: "sessionId"}
	}
	_, err := c.raw.SetSessionState(ctx, &settlementpb.SetSessionStateRequest{
		SessionID:    sessionID,
		SessionState: state,
	})
	return err
}

// ReleaseSession asks the host to release the lock held on sessionID.
func (c *SettlementClient) ReleaseSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrArgumentError{Field: "sessionId"}
	}
	_, err := c.raw.ReleaseSession(ctx, &settlementpb.ReleaseSessionRequest{SessionID: sessionID})
	return err
}

// RenewSessionLock asks the host to extend the lock held on sessionID, returning the new expiry instant.
func (c *SettlementClient) RenewSessionLock(ctx context.Context, sessionID string) (time.Time, error) {
	if sessionID == "" {
		return time.Time{}, ErrArgumentError{Field: "sessionId"}
	}
	resp, err := c.raw.RenewSessionLock(ctx, &settlementpb.RenewSessionLockRequest{SessionID: sessionID})
	if err != nil {
		return time.Time{}, err
	}
	if resp.LockedUntil == nil {
		return time.Time{}, ErrEmptyResponse{}
	}
	return *resp.LockedUntil, nil
}

// Close tears down the underlying gRPC channel. The spec notes there is no teardown hook in the current
// design (spec.md §9); this exists only so test suites can clean up the fake server/channel pair they stand
// up for each run, not for production use.
func (c *SettlementClient) Close() error {
	return c.conn.Close()
}
