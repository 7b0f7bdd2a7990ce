package servicebus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterBlobFactory_IsIdempotent(t *testing.T) {
	resetRegistryForTests()
	defer resetRegistryForTests()

	require.NoError(t, RegisterBlobFactory())
	assert.True(t, GetResourceFactoryRegistry().Has(TagAzureStorageBlobs))
	assert.NoError(t, RegisterBlobFactory())
}

func TestRegisterBlobFactory_RejectsWrongBindingDataType(t *testing.T) {
	resetRegistryForTests()
	defer resetRegistryForTests()

	require.NoError(t, RegisterBlobFactory())
	_, err := GetResourceFactoryRegistry().Create(TagAzureStorageBlobs, "not-a-blob-binding")
	var initErr ErrBlobFactoryInitFailed
	require.ErrorAs(t, err, &initErr)
}

func TestRegisterBlobFactory_RejectsEmptyConnectionName(t *testing.T) {
	resetRegistryForTests()
	defer resetRegistryForTests()

	require.NoError(t, RegisterBlobFactory())
	_, err := GetResourceFactoryRegistry().Create(TagAzureStorageBlobs, BlobBindingData{Container: "c", BlobName: "b"})
	assert.Equal(t, ErrArgumentError{Field: "connectionName"}, err)
}

func TestServiceBusAndBlobFactories_ShareOneRegistryWithDistinctTags(t *testing.T) {
	resetRegistryForTests()
	resetSettlementClientForTests()
	defer resetRegistryForTests()
	defer resetSettlementClientForTests()

	require.NoError(t, RegisterServiceBusFactory(validTransportArgs()))
	require.NoError(t, RegisterBlobFactory())

	registry := GetResourceFactoryRegistry()
	assert.True(t, registry.Has(TagAzureServiceBusReceivedMessage))
	assert.True(t, registry.Has(TagAzureStorageBlobs))

	// Re-registering either tag under the other's factory must still be rejected (C7's core invariant),
	// proving the two subsystems share one registry rather than each keeping a private map.
	err := registry.Register(TagAzureStorageBlobs, func(interface{}) (interface{}, error) { return nil, nil })
	assert.Equal(t, ErrAlreadyRegistered{Tag: TagAzureStorageBlobs}, err)
}
