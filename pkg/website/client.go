// Package website activates static website hosting on a storage account
// after its deployment template has been accepted: an imperative, two-step
// side effect kept outside template emission.
package website

import (
	"context"
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"
)

// ServiceClient is the subset of the blob data-plane surface the deployer
// needs.
type ServiceClient interface {
	// EnableStaticWebsite turns on website hosting with the given index
	// document and optional 404 document.
	EnableStaticWebsite(ctx context.Context, indexPage string, errorPage *string) error

	// UploadFile uploads a local file into a container under the given
	// blob name, overwriting any existing blob.
	UploadFile(ctx context.Context, containerName string, blobName string, filePath string) error
}

type blobServiceClient struct {
	client      *azblob.Client
	accountName string
}

// NewServiceClient builds a blob service client for the account's public
// blob endpoint.
func NewServiceClient(accountName string, credential azcore.TokenCredential) (ServiceClient, error) {
	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net", accountName)
	client, err := azblob.NewClient(serviceURL, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("creating blob service client for '%s': %w", accountName, err)
	}

	return &blobServiceClient{client: client, accountName: accountName}, nil
}

// NewDefaultServiceClient builds a service client using the ambient Azure
// credential chain (environment, workload identity, managed identity, CLI).
func NewDefaultServiceClient(accountName string) (ServiceClient, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("resolving azure credential: %w", err)
	}

	return NewServiceClient(accountName, credential)
}

func (c *blobServiceClient) EnableStaticWebsite(ctx context.Context, indexPage string, errorPage *string) error {
	_, err := c.client.ServiceClient().SetProperties(ctx, &service.SetPropertiesOptions{
		StaticWebsite: &service.StaticWebsite{
			Enabled:              to.Ptr(true),
			IndexDocument:        to.Ptr(indexPage),
			ErrorDocument404Path: errorPage,
		},
	})
	if err != nil {
		return fmt.Errorf("setting blob service properties on '%s': %w", c.accountName, err)
	}

	return nil
}

func (c *blobServiceClient) UploadFile(ctx context.Context, containerName string, blobName string, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening '%s': %w", filePath, err)
	}
	defer file.Close()

	if _, err := c.client.UploadFile(ctx, containerName, blobName, file, nil); err != nil {
		return fmt.Errorf("uploading '%s': %w", blobName, err)
	}

	return nil
}
