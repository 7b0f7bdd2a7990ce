package servicebus

import (
	"fmt"

	"github.com/Azure/azure-functions-go-worker-extensions/blob"
)

var blobClientCache = blob.NewCache()

// BlobBindingData is the binding-data shape the AzureStorageBlobs deferred-binding tag resolves: which
// environment-variable-backed connection to use (per spec.md §6's probing order) and which container/blob the
// caller wants a client scoped to.
type BlobBindingData struct {
	ConnectionName string
	Container      string
	BlobName       string
}

// RegisterBlobFactory installs the AzureStorageBlobs factory (§4.9/§6) into the process-wide resource-factory
// registry, giving C7 a second real registrant alongside RegisterServiceBusFactory so the "duplicate tag
// rejected" invariant is exercised by two independent subsystems instead of one calling itself twice.
func RegisterBlobFactory() error {
	registry := GetResourceFactoryRegistry()
	if registry.Has(TagAzureStorageBlobs) {
		return nil
	}

	err := registry.Register(TagAzureStorageBlobs, func(bindingData interface{}) (interface{}, error) {
		bd, ok := bindingData.(BlobBindingData)
		if !ok {
			return nil, ErrBlobFactoryInitFailed{Cause: fmt.Errorf("unsupported binding data type %T", bindingData)}
		}
		if bd.ConnectionName == "" {
			return nil, ErrArgumentError{Field: "connectionName"}
		}

		client, err := blobClientCache.GetOrCreate(bd.ConnectionName, bd.Container, bd.BlobName, func() (blob.Client, error) {
			return blob.NewClientFromEnv(bd.ConnectionName)
		})
		if err != nil {
			return nil, ErrBlobFactoryInitFailed{Cause: err}
		}
		return client, nil
	})
	if err != nil {
		return ErrBlobFactoryInitFailed{Cause: err}
	}
	logger.V(1).Info("registered resource factory", "tag", TagAzureStorageBlobs)
	return nil
}
