package servicebus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransportArgs() []string {
	return []string{"--host=localhost", "--port=0", "--functions-grpc-max-message-length=4194304"}
}

func TestRegisterServiceBusFactory_IsIdempotent(t *testing.T) {
	resetRegistryForTests()
	resetSettlementClientForTests()
	defer resetRegistryForTests()
	defer resetSettlementClientForTests()

	require.NoError(t, RegisterServiceBusFactory(validTransportArgs()))
	assert.True(t, GetResourceFactoryRegistry().Has(TagAzureServiceBusReceivedMessage))

	// A second call must not surface ErrAlreadyRegistered — bootstrap may run this more than once.
	assert.NoError(t, RegisterServiceBusFactory(validTransportArgs()))
}

func TestRegisterServiceBusFactory_BadTransportArgsSurfaceOnFirstCreate(t *testing.T) {
	resetRegistryForTests()
	resetSettlementClientForTests()
	defer resetRegistryForTests()
	defer resetSettlementClientForTests()

	require.NoError(t, RegisterServiceBusFactory(nil))

	_, err := GetResourceFactoryRegistry().Create(TagAzureServiceBusReceivedMessage, BindingData{Content: []byte("x")})
	var initErr ErrServiceBusFactoryInitFailed
	require.ErrorAs(t, err, &initErr)
}

func TestCreateServiceBusMessageContext_NilBindingDataIsNullContent(t *testing.T) {
	resetRegistryForTests()
	resetSettlementClientForTests()
	defer resetRegistryForTests()
	defer resetSettlementClientForTests()

	require.NoError(t, RegisterServiceBusFactory(validTransportArgs()))

	_, err := GetResourceFactoryRegistry().Create(TagAzureServiceBusReceivedMessage, nil)
	assert.Equal(t, ErrNullContent{}, err)
}

func TestCreateServiceBusMessageContext_EmptyContentIsNullContent(t *testing.T) {
	resetRegistryForTests()
	resetSettlementClientForTests()
	defer resetRegistryForTests()
	defer resetSettlementClientForTests()

	require.NoError(t, RegisterServiceBusFactory(validTransportArgs()))

	_, err := GetResourceFactoryRegistry().Create(TagAzureServiceBusReceivedMessage, BindingData{})
	assert.Equal(t, ErrNullContent{}, err)

	_, err = GetResourceFactoryRegistry().Create(TagAzureServiceBusReceivedMessage, []BindingData{{Content: []byte("x")}, {}})
	assert.Equal(t, ErrNullContent{}, err)
}

func TestCreateServiceBusMessageContext_UnsupportedBindingDataType(t *testing.T) {
	resetRegistryForTests()
	resetSettlementClientForTests()
	defer resetRegistryForTests()
	defer resetSettlementClientForTests()

	require.NoError(t, RegisterServiceBusFactory(validTransportArgs()))

	_, err := GetResourceFactoryRegistry().Create(TagAzureServiceBusReceivedMessage, 42)
	var initErr ErrServiceBusFactoryInitFailed
	require.ErrorAs(t, err, &initErr)
}

func TestCreateServiceBusMessageContext_SingleRecordDecodeErrorPropagates(t *testing.T) {
	resetRegistryForTests()
	resetSettlementClientForTests()
	defer resetRegistryForTests()
	defer resetSettlementClientForTests()

	require.NoError(t, RegisterServiceBusFactory(validTransportArgs()))

	// 32 zero bytes carry no lock-token marker anywhere in the buffer.
	_, err := GetResourceFactoryRegistry().Create(TagAzureServiceBusReceivedMessage, BindingData{Content: make([]byte, 32)})
	assert.Equal(t, ErrLockTokenNotFound{}, err)
}

func TestCreateServiceBusMessageContext_ActionsIsTheSharedSettlementSingleton(t *testing.T) {
	resetRegistryForTests()
	resetSettlementClientForTests()
	defer resetRegistryForTests()
	defer resetSettlementClientForTests()

	require.NoError(t, RegisterServiceBusFactory(validTransportArgs()))
	direct, err := GetSettlementClient(validTransportArgs())
	require.NoError(t, err)

	// A malformed record still reaches GetSettlementClient before decode fails, so the factory's Actions
	// client must already be the same process-wide singleton every other caller observes.
	_, err = GetResourceFactoryRegistry().Create(TagAzureServiceBusReceivedMessage, BindingData{Content: make([]byte, 32)})
	assert.Equal(t, ErrLockTokenNotFound{}, err)

	again, err := GetSettlementClient(validTransportArgs())
	require.NoError(t, err)
	assert.Same(t, direct, again)

	// An empty batch decodes nothing, so the factory returns a MessageContext whose Actions can be compared.
	out, err := GetResourceFactoryRegistry().Create(TagAzureServiceBusReceivedMessage, []BindingData{})
	require.NoError(t, err)
	assert.Same(t, direct, out.(*MessageContext).Actions)
}
