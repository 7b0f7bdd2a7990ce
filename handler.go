package servicebus

import "context"

type (
	// Handler exposes the functionality required to process a received Service Bus message and decide how to
	// settle it through actions.
	Handler interface {
		Handle(ctx context.Context, msg *ReceivedMessage, actions *SettlementClient) error
	}

	// HandlerFunc is a type converter that allows a func to be used as a `Handler`.
	HandlerFunc func(ctx context.Context, msg *ReceivedMessage, actions *SettlementClient) error
)

// Handle redirects this call to the func that was provided.
func (hf HandlerFunc) Handle(ctx context.Context, msg *ReceivedMessage, actions *SettlementClient) error {
	return hf(ctx, msg, actions)
}

// Dispatch invokes h once per message in mc, in order, stopping at the first error. It is the glue a function
// handler uses to turn the {messages, actions} pair C8's factory returns into settlement decisions — the
// teacher's direct-disposition callback (Message.Complete()/Abandon() etc. returning a DispositionAction)
// replaced with settlement calls issued over the gRPC side-channel instead of an AMQP link.
func Dispatch(ctx context.Context, mc *MessageContext, h Handler) error {
	for _, msg := range mc.Messages {
		if err := h.Handle(ctx, msg, mc.Actions); err != nil {
			return err
		}
	}
	return nil
}
