package azure

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/applicationinsights/armapplicationinsights"

	"github.com/shiftbase/sbdeploy/types"
)

// CreateTelemetryComponent creates an Application Insights component of kind
// web, bound to the resource group and location.
func (p *Provider) CreateTelemetryComponent(ctx context.Context, group, name, location string) (types.ProvisionedResource, error) {
	resp, err := p.compClient.CreateOrUpdate(ctx, group, name, armapplicationinsights.Component{
		Kind:     to.Ptr("web"),
		Location: to.Ptr(location),
		Tags:     p.armTags(),
		Properties: &armapplicationinsights.ComponentProperties{
			ApplicationType: to.Ptr(armapplicationinsights.ApplicationTypeWeb),
		},
	}, nil)
	if err != nil {
		return types.ProvisionedResource{}, fmt.Errorf("failed to create telemetry component %s: %w", name, err)
	}

	resource := types.ProvisionedResource{
		Kind:      types.KindTelemetryComponent,
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

// TelemetryKey reads back the instrumentation key of a created component.
// An empty key is returned as-is; the caller decides how to degrade.
func (p *Provider) TelemetryKey(ctx context.Context, group, name string) (string, error) {
	resp, err := p.compClient.Get(ctx, group, name, nil)
	if err != nil {
		return "", fmt.Errorf("failed to read telemetry component %s: %w", name, err)
	}
	if resp.Properties == nil || resp.Properties.InstrumentationKey == nil {
		return "", nil
	}
	return *resp.Properties.InstrumentationKey, nil
}
