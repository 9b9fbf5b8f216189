package azure

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/shiftbase/sbdeploy/types"
)

// CreateResourceGroup creates the container group all other resources live in.
func (p *Provider) CreateResourceGroup(ctx context.Context, name, location string) (types.ProvisionedResource, error) {
	resp, err := p.groupsClient.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
		Tags:     p.armTags(),
	}, nil)
	if err != nil {
		return types.ProvisionedResource{}, fmt.Errorf("failed to create resource group %s: %w", name, err)
	}

	resource := types.ProvisionedResource{
		Kind:      types.KindResourceGroup,
		Name:      name,
		Location:  location,
		CreatedAt: time.Now(),
	}
	if resp.ID != nil {
		resource.ID = *resp.ID
	}
	return resource, nil
}
