// Package settlementpb carries the Go shapes a protoc-gen-go / protoc-gen-go-grpc pass over a Settlement.proto
// would produce for the host's Settlement service (spec.md §4.5/§6). Running protoc is out of scope for this
// module (no toolchain access at build time); see wire.go for how these types are actually put on the wire.
package settlementpb

import "time"

// CompleteRequest is the request for Settlement.Complete.
type CompleteRequest struct {
	LockToken string
}

// AbandonRequest is the request for Settlement.Abandon.
type AbandonRequest struct {
	LockToken          string
	PropertiesToModify []byte
}

// DeadletterRequest is the request for Settlement.Deadletter.
type DeadletterRequest struct {
	LockToken                   string
	PropertiesToModify          []byte
	DeadletterReason            *StringValue
	DeadletterErrorDescription  *StringValue
}

// DeferRequest is the request for Settlement.Defer.
type DeferRequest struct {
	LockToken          string
	PropertiesToModify []byte
}

// RenewMessageLockRequest is the request for Settlement.RenewMessageLock.
type RenewMessageLockRequest struct {
	LockToken string
}

// SetSessionStateRequest is the request for Settlement.SetSessionState.
type SetSessionStateRequest struct {
	SessionID    string
	SessionState []byte
}

// ReleaseSessionRequest is the request for Settlement.ReleaseSession.
type ReleaseSessionRequest struct {
	SessionID string
}

// RenewSessionLockRequest is the request for Settlement.RenewSessionLock.
type RenewSessionLockRequest struct {
	SessionID string
}

// RenewSessionLockResponse is the response for Settlement.RenewSessionLock. LockedUntil is nil when the host
// omitted the field, which the caller surfaces as ErrEmptyResponse.
type RenewSessionLockResponse struct {
	LockedUntil *time.Time
}

// StringValue wraps an optional string field the way a well-known protobuf StringValue wrapper would, so
// "absent" and "empty string" stay distinguishable on the wire (§4.5's deadletter reason/description fields).
type StringValue struct {
	Value string
}

// Empty is the response shape for every settlement operation that has nothing to report beyond success.
type Empty struct{}
