package servicebus

import "fmt"

// Deferred-binding-type tags (§6). AzureEventHubsEventData and CosmosDB are declared because the spec
// enumerates them as part of the wire contract, but this module registers no factory for either — see
// SPEC_FULL.md §7.
const (
	TagAzureStorageBlobs              = "AzureStorageBlobs"
	TagAzureServiceBusReceivedMessage = "AzureServiceBusReceivedMessage"
	TagAzureEventHubsEventData        = "AzureEventHubsEventData"
	TagCosmosDB                       = "CosmosDB"
)

// BindingData is the host's binding-data envelope (§6): an opaque content buffer plus metadata.
type BindingData struct {
	Content     []byte
	ContentType string
	Source      string
	Version     string
}

// MessageContext is the public ServiceBusMessageContext type (§6): the projected messages for an invocation
// plus the process-wide settlement actions client.
type MessageContext struct {
	Messages []*ReceivedMessage
	Actions  *SettlementClient
}

// RegisterServiceBusFactory is C8: it installs the AzureServiceBusReceivedMessage factory into the process-
// wide resource-factory registry, composing C3 (decodeBindingPayload) and C4 (projectReceivedMessage) and
// attaching the C6 settlement client singleton. transportArgs is the process argument vector the settlement
// client dials from on first use.
//
// Unlike the source, which installs this factory as a side effect of the module being loaded, this is an
// explicit call: Go has no equivalent to a module's top-level code running arbitrary, possibly-failing I/O on
// import, and a package-level init() can only panic on failure, which would crash the whole process rather
// than surface ServiceBusFactoryInitFailed to the caller. Callers invoke this once during worker bootstrap.
func RegisterServiceBusFactory(transportArgs []string) error {
	registry := GetResourceFactoryRegistry()
	if registry.Has(TagAzureServiceBusReceivedMessage) {
		return nil
	}

	err := registry.Register(TagAzureServiceBusReceivedMessage, func(bindingData interface{}) (interface{}, error) {
		return createServiceBusMessageContext(transportArgs, bindingData)
	})
	if err != nil {
		return ErrServiceBusFactoryInitFailed{Cause: err}
	}
	logger.V(1).Info("registered resource factory", "tag", TagAzureServiceBusReceivedMessage)
	return nil
}

func createServiceBusMessageContext(transportArgs []string, bindingData interface{}) (*MessageContext, error) {
	actions, err := GetSettlementClient(transportArgs)
	if err != nil {
		return nil, ErrServiceBusFactoryInitFailed{Cause: err}
	}

	var records []BindingData
	switch v := bindingData.(type) {
	case BindingData:
		records = []BindingData{v}
	case []BindingData:
		records = v
	case nil:
		return nil, ErrNullContent{}
	default:
		return nil, ErrServiceBusFactoryInitFailed{Cause: fmt.Errorf("unsupported binding data type %T", bindingData)}
	}

	messages := make([]*ReceivedMessage, 0, len(records))
	for _, rec := range records {
		if len(rec.Content) == 0 {
			return nil, ErrNullContent{}
		}
		amqpMsg, lockToken, err := decodeBindingPayload(rec.Content)
		if err != nil {
			return nil, err
		}
		rm, err := projectReceivedMessage(amqpMsg, lockToken)
		if err != nil {
			return nil, err
		}
		messages = append(messages, rm)
	}

	return &MessageContext{Messages: messages, Actions: actions}, nil
}
