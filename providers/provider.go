// Package providers defines the control-plane surface the pipeline drives.
package providers

import (
	"context"

	"github.com/shiftbase/sbdeploy/types"
)

// ControlPlane is the narrow view of the cloud control plane the pipeline
// needs: one creation call per resource type, a settings update, and the
// telemetry key read-back. Implementations block until the control plane
// reports the resource as created.
type ControlPlane interface {
	// VerifySession confirms the process is authenticated and returns the
	// active account context. Called once, before any mutating call.
	VerifySession(ctx context.Context) (types.Account, error)

	CreateResourceGroup(ctx context.Context, name, location string) (types.ProvisionedResource, error)
	CreateStorageAccount(ctx context.Context, group, name, location string) (types.ProvisionedResource, error)
	CreateTelemetryComponent(ctx context.Context, group, name, location string) (types.ProvisionedResource, error)

	// TelemetryKey reads back the instrumentation key of a created telemetry
	// component. An empty key with nil error means the key is not yet
	// available; callers treat both cases as non-fatal.
	TelemetryKey(ctx context.Context, group, name string) (string, error)

	CreateFunctionHost(ctx context.Context, spec types.FunctionHostSpec) (types.ProvisionedResource, error)

	// ApplySettings merges the given settings into the function host's
	// application settings, preserving entries set at creation time.
	ApplySettings(ctx context.Context, group, host string, settings types.Settings) error
}
