package azure

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v4"

	"github.com/shiftbase/sbdeploy/types"
)

// CreateFunctionHost creates a Linux consumption plan and the function app on
// it, with a system-assigned managed identity. The telemetry component is
// referenced by name only (via tag); its key is never passed here.
func (p *Provider) CreateFunctionHost(ctx context.Context, spec types.FunctionHostSpec) (types.ProvisionedResource, error) {
	planID, err := p.createConsumptionPlan(ctx, spec)
	if err != nil {
		return types.ProvisionedResource{}, err
	}

	storageConn, err := p.storageConnectionString(ctx, spec.Group, spec.StorageAccount)
	if err != nil {
		return types.ProvisionedResource{}, err
	}

	tags := p.armTags()
	if spec.TelemetryComponent != "" {
		if tags == nil {
			tags = map[string]*string{}
		}
		tags["telemetry"] = to.Ptr(spec.TelemetryComponent)
	}
	for k, v := range spec.Tags {
		if tags == nil {
			tags = map[string]*string{}
		}
		tags[k] = to.Ptr(v)
	}

	linuxFxVersion := fmt.Sprintf("%s|%s", capitalize(spec.Runtime), spec.RuntimeVersion)

	poller, err := p.webClient.BeginCreateOrUpdate(ctx, spec.Group, spec.Name, armappservice.Site{
		Kind:     to.Ptr("functionapp,linux"),
		Location: to.Ptr(spec.Location),
		Tags:     tags,
		Identity: &armappservice.ManagedServiceIdentity{
			Type: to.Ptr(armappservice.ManagedServiceIdentityTypeSystemAssigned),
		},
		Properties: &armappservice.SiteProperties{
			ServerFarmID: to.Ptr(planID),
			Reserved:     to.Ptr(true),
			HTTPSOnly:    to.Ptr(true),
			SiteConfig: &armappservice.SiteConfig{
				LinuxFxVersion: to.Ptr(linuxFxVersion),
				AppSettings: []*armappservice.NameValuePair{
					{Name: to.Ptr("AzureWebJobsStorage"), Value: to.Ptr(storageConn)},
					{Name: to.Ptr("FUNCTIONS_EXTENSION_VERSION"), Value: to.Ptr(spec.ExtensionVersion)},
					{Name: to.Ptr("FUNCTIONS_WORKER_RUNTIME"), Value: to.Ptr(spec.Runtime)},
				},
			},
		},
	}, nil)
	if err != nil {
		return types.ProvisionedResource{}, fmt.Errorf("failed to create function host %s: %w", spec.Name, err)
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return types.ProvisionedResource{}, fmt.Errorf("function host %s provisioning failed: %w", spec.Name, err)
	}

	resource := types.ProvisionedResource{
		Kind:      types.KindFunctionHost,
		Name:      spec.Name,
		Location:  spec.Location,
		Group:     spec.Group,
		CreatedAt: time.Now(),
	}
	if resp.ID != nil {
		resource.ID = *resp.ID
	}
	return resource, nil
}

// createConsumptionPlan provisions the Y1 dynamic (pay-per-use) Linux plan
// the function host runs on and returns its resource ID.
func (p *Provider) createConsumptionPlan(ctx context.Context, spec types.FunctionHostSpec) (string, error) {
	planName := spec.Name + "-plan"

	poller, err := p.plansClient.BeginCreateOrUpdate(ctx, spec.Group, planName, armappservice.Plan{
		Kind:     to.Ptr("functionapp"),
		Location: to.Ptr(spec.Location),
		Tags:     p.armTags(),
		SKU: &armappservice.SKUDescription{
			Name: to.Ptr("Y1"),
			Tier: to.Ptr("Dynamic"),
		},
		Properties: &armappservice.PlanProperties{
			Reserved: to.Ptr(true), // Linux
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create consumption plan %s: %w", planName, err)
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("consumption plan %s provisioning failed: %w", planName, err)
	}
	if resp.ID == nil {
		return "", fmt.Errorf("consumption plan %s returned no resource ID", planName)
	}
	return *resp.ID, nil
}

// ApplySettings merges settings into the host's application settings. ARM's
// update call replaces the whole dictionary, so existing entries are read
// first and kept.
func (p *Provider) ApplySettings(ctx context.Context, group, host string, settings types.Settings) error {
	existing, err := p.webClient.ListApplicationSettings(ctx, group, host, nil)
	if err != nil {
		return fmt.Errorf("failed to read settings of %s: %w", host, err)
	}

	merged := map[string]*string{}
	for k, v := range existing.Properties {
		merged[k] = v
	}
	for _, s := range settings {
		merged[s.Key] = to.Ptr(s.Value)
	}

	_, err = p.webClient.UpdateApplicationSettings(ctx, group, host, armappservice.StringDictionary{
		Properties: merged,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to update settings of %s: %w", host, err)
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
