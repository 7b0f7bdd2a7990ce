package servicebus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch_InvokesHandlerForEveryMessageInOrder(t *testing.T) {
	mc := &MessageContext{
		Messages: []*ReceivedMessage{
			{MessageID: "1"},
			{MessageID: "2"},
			{MessageID: "3"},
		},
	}

	var seen []string
	h := HandlerFunc(func(ctx context.Context, msg *ReceivedMessage, actions *SettlementClient) error {
		seen = append(seen, msg.MessageID)
		return nil
	})

	err := Dispatch(context.Background(), mc, h)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, seen)
}

func TestDispatch_StopsAtFirstError(t *testing.T) {
	mc := &MessageContext{
		Messages: []*ReceivedMessage{
			{MessageID: "1"},
			{MessageID: "2"},
		},
	}

	wantErr := errors.New("handler failed")
	var seen []string
	h := HandlerFunc(func(ctx context.Context, msg *ReceivedMessage, actions *SettlementClient) error {
		seen = append(seen, msg.MessageID)
		return wantErr
	})

	err := Dispatch(context.Background(), mc, h)
	assert.Equal(t, wantErr, err)
	assert.Equal(t, []string{"1"}, seen)
}

func TestDispatch_PassesActionsThrough(t *testing.T) {
	actions := &SettlementClient{}
	mc := &MessageContext{Messages: []*ReceivedMessage{{MessageID: "1"}}, Actions: actions}

	var got *SettlementClient
	h := HandlerFunc(func(ctx context.Context, msg *ReceivedMessage, a *SettlementClient) error {
		got = a
		return nil
	})

	assert.NoError(t, Dispatch(context.Background(), mc, h))
	assert.Same(t, actions, got)
}
