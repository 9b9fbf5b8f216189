// Package azure implements the control plane against Azure Resource Manager.
package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/applicationinsights/armapplicationinsights"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v4"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"

	"github.com/shiftbase/sbdeploy/providers"
	"github.com/shiftbase/sbdeploy/types"
)

// Config for the Azure provider.
type Config struct {
	Subscription string
	Tags         map[string]string
}

// Provider implements providers.ControlPlane using the Azure SDK.
type Provider struct {
	subscription  string
	tags          map[string]string
	subsClient    *armsubscriptions.Client
	groupsClient  *armresources.ResourceGroupsClient
	storageClient *armstorage.AccountsClient
	compClient    *armapplicationinsights.ComponentsClient
	plansClient   *armappservice.PlansClient
	webClient     *armappservice.WebAppsClient
}

// New builds the client bundle from the default credential chain (environment,
// managed identity, then the locally cached CLI login). A credential that
// cannot be built is an authentication failure before any call is made.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build credential: %w", err)
	}
	return newWithCredential(cfg, cred)
}

func newWithCredential(cfg Config, cred azcore.TokenCredential) (*Provider, error) {
	subsClient, err := armsubscriptions.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}
	groupsClient, err := armresources.NewResourceGroupsClient(cfg.Subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	storageClient, err := armstorage.NewAccountsClient(cfg.Subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage accounts client: %w", err)
	}
	compClient, err := armapplicationinsights.NewComponentsClient(cfg.Subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create insights components client: %w", err)
	}
	plansClient, err := armappservice.NewPlansClient(cfg.Subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create app service plans client: %w", err)
	}
	webClient, err := armappservice.NewWebAppsClient(cfg.Subscription, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create web apps client: %w", err)
	}

	return &Provider{
		subscription:  cfg.Subscription,
		tags:          cfg.Tags,
		subsClient:    subsClient,
		groupsClient:  groupsClient,
		storageClient: storageClient,
		compClient:    compClient,
		plansClient:   plansClient,
		webClient:     webClient,
	}, nil
}

// VerifySession issues a read-only subscription lookup to confirm the
// credential works and the configured subscription is visible.
func (p *Provider) VerifySession(ctx context.Context) (types.Account, error) {
	resp, err := p.subsClient.Get(ctx, p.subscription, nil)
	if err != nil {
		return types.Account{}, fmt.Errorf("failed to verify subscription %s: %w", p.subscription, err)
	}

	account := types.Account{SubscriptionID: p.subscription}
	if resp.DisplayName != nil {
		account.DisplayName = *resp.DisplayName
	}
	if resp.TenantID != nil {
		account.TenantID = *resp.TenantID
	}
	return account, nil
}

// armTags converts the provider tags to the pointer map ARM expects.
func (p *Provider) armTags() map[string]*string {
	if len(p.tags) == 0 {
		return nil
	}
	tags := make(map[string]*string, len(p.tags))
	for k, v := range p.tags {
		value := v
		tags[k] = &value
	}
	return tags
}

// Ensure Provider implements the control plane interface
var _ providers.ControlPlane = (*Provider)(nil)
