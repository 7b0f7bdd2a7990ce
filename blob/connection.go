package blob

import (
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// ErrMissingConnectionConfig indicates none of the documented environment-variable shapes were present for a
// binding name.
type ErrMissingConnectionConfig struct {
	Name string
}

func (e ErrMissingConnectionConfig) Error() string {
	return fmt.Sprintf("no connection string, service URI, or managed-identity configuration found for %q", e.Name)
}

// NewClientFromEnv builds an *azblob.Client for the binding configuration named name, following the
// precedence order documented in spec.md §6: a literal connection string wins if present; otherwise a
// managed-identity service URI is used, with an optional client-ID + credential pair selecting a
// user-assigned identity over the default chain.
func NewClientFromEnv(name string) (*azblob.Client, error) {
	if connStr := os.Getenv(name); connStr != "" {
		return azblob.NewClientFromConnectionString(connStr, nil)
	}

	serviceURI := firstNonEmpty(os.Getenv(name+"__serviceUri"), os.Getenv(name+"__blobServiceUri"))
	if serviceURI == "" {
		return nil, ErrMissingConnectionConfig{Name: name}
	}

	clientID := os.Getenv(name + "__clientId")
	credentialHint := os.Getenv(name + "__credential")

	var cred azcore.TokenCredential
	var err error
	if clientID != "" && credentialHint != "" {
		cred, err = azidentity.NewManagedIdentityCredential(&azidentity.ManagedIdentityCredentialOptions{
			ID: azidentity.ClientID(clientID),
		})
	} else {
		cred, err = azidentity.NewDefaultAzureCredential(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("resolving credential for %q: %w", name, err)
	}

	return azblob.NewClient(serviceURI, cred, nil)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
