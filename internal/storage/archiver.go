package storage

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// Archiver stores a copy of an analyzed coin image. Archival is best-effort
// and runs off the request path; failures are logged by the caller, never
// surfaced to the client.
type Archiver interface {
	Archive(ctx context.Context, blobName string, data []byte) error
}

type azureArchiver struct {
	client    *azblob.Client
	container string
}

// NewAzureArchiver creates a blob archiver using a shared-key credential.
func NewAzureArchiver(accountName, accountKey, container string) (Archiver, error) {
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, err
	}

	client, err := azblob.NewClientWithSharedKeyCredential(
		fmt.Sprintf("https://%s.blob.core.windows.net", accountName),
		credential,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &azureArchiver{client: client, container: container}, nil
}

func (a *azureArchiver) Archive(ctx context.Context, blobName string, data []byte) error {
	_, err := a.client.UploadBuffer(ctx, a.container, blobName, data, nil)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	return nil
}

type noopArchiver struct{}

// NewNoopArchiver returns an archiver that discards everything, used when no
// storage account is configured.
func NewNoopArchiver() Archiver {
	return noopArchiver{}
}

func (noopArchiver) Archive(ctx context.Context, blobName string, data []byte) error {
	return nil
}
