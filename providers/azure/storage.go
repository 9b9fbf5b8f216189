package azure

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"

	"github.com/shiftbase/sbdeploy/types"
)

// CreateStorageAccount creates a StorageV2 account and blocks until the
// control plane finishes provisioning it.
func (p *Provider) CreateStorageAccount(ctx context.Context, group, name, location string) (types.ProvisionedResource, error) {
	poller, err := p.storageClient.BeginCreate(ctx, group, name, armstorage.AccountCreateParameters{
		SKU:      &armstorage.SKU{Name: to.Ptr(armstorage.SKUNameStandardLRS)},
		Kind:     to.Ptr(armstorage.KindStorageV2),
		Location: to.Ptr(location),
		Tags:     p.armTags(),
	}, nil)
	if err != nil {
		return types.ProvisionedResource{}, fmt.Errorf("failed to create storage account %s: %w", name, err)
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return types.ProvisionedResource{}, fmt.Errorf("storage account %s provisioning failed: %w", name, err)
	}

	resource := types.ProvisionedResource{
		Kind:      types.KindStorageAccount,
		Name:      name,
		Location:  location,
		Group:     group,
		CreatedAt: time.Now(),
	}
	if resp.ID != nil {
		resource.ID = *resp.ID
	}
	return resource, nil
}

// storageConnectionString reads back the primary account key and builds the
// AzureWebJobsStorage connection string the function host boots with.
func (p *Provider) storageConnectionString(ctx context.Context, group, name string) (string, error) {
	resp, err := p.storageClient.ListKeys(ctx, group, name, nil)
	if err != nil {
		return "", fmt.Errorf("failed to list keys for storage account %s: %w", name, err)
	}
	if len(resp.Keys) == 0 || resp.Keys[0].Value == nil {
		return "", fmt.Errorf("storage account %s returned no keys", name)
	}

	return fmt.Sprintf(
		"DefaultEndpointsProtocol=https;AccountName=%s;AccountKey=%s;EndpointSuffix=core.windows.net",
		name, *resp.Keys[0].Value,
	), nil
}
