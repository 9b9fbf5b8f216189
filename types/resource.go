package types

import "time"

// ResourceKind identifies one of the fixed resource types this tool provisions.
type ResourceKind string

const (
	KindResourceGroup      ResourceKind = "resource-group"
	KindStorageAccount     ResourceKind = "storage-account"
	KindTelemetryComponent ResourceKind = "telemetry-component"
	KindFunctionHost       ResourceKind = "function-host"
)

// ProvisionedResource records a resource created during a run.
type ProvisionedResource struct {
	Kind      ResourceKind `json:"kind"`
	Name      string       `json:"name"`
	ID        string       `json:"id,omitempty"`
	Location  string       `json:"location"`
	Group     string       `json:"group,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// Account describes the authenticated subscription context.
type Account struct {
	SubscriptionID string `json:"subscription_id"`
	DisplayName    string `json:"display_name"`
	TenantID       string `json:"tenant_id,omitempty"`
}

// FunctionHostSpec carries everything the function-host creation call needs.
// All identifiers come from earlier pipeline stages; the spec never invents
// names mid-flow.
type FunctionHostSpec struct {
	Name               string
	Group              string
	Location           string
	StorageAccount     string
	TelemetryComponent string
	Runtime            string // worker runtime, e.g. "python"
	RuntimeVersion     string // e.g. "3.11"
	ExtensionVersion   string // e.g. "~4"
	Tags               map[string]string
}
