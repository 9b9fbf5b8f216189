// Package naming derives resource names from a single per-run identity.
// Azure storage accounts have the strictest grammar (3-24 chars, lowercase
// alphanumeric only), so derivation validates before any cloud call is made.
package naming

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	// Storage account name bounds documented by the provider.
	StorageNameMinLen = 3
	StorageNameMaxLen = 24

	// storageToken is appended between the normalized prefix and the suffix.
	storageToken = "stor"

	// telemetryMarker prefixes the function-host name so the component is
	// traceable 1:1 to its host.
	telemetryMarker = "appi-"

	suffixMin = 1000
	suffixMax = 9999
)

// DeploymentIdentity is the immutable naming seed for one run. The suffix is
// drawn once and reused across every derived name.
type DeploymentIdentity struct {
	Prefix string `json:"prefix"`
	Suffix int    `json:"suffix"`
}

// NewIdentity draws a fresh 4-digit suffix for the given project prefix.
func NewIdentity(prefix string) DeploymentIdentity {
	return DeploymentIdentity{
		Prefix: prefix,
		Suffix: suffixMin + rand.Intn(suffixMax-suffixMin+1),
	}
}

// ResourceGroup returns the resource group name.
func (d DeploymentIdentity) ResourceGroup() string {
	return fmt.Sprintf("%s-rg-%d", d.Prefix, d.Suffix)
}

// FunctionHost returns the function host name.
func (d DeploymentIdentity) FunctionHost() string {
	return fmt.Sprintf("%s-func-%d", d.Prefix, d.Suffix)
}

// TelemetryComponent returns the telemetry component name, derived from the
// function-host name.
func (d DeploymentIdentity) TelemetryComponent() string {
	return telemetryMarker + d.FunctionHost()
}

// StorageAccount normalizes the prefix into the storage account grammar:
// hyphens stripped, storage token and suffix appended, lowercased. Returns an
// error if the result falls outside the provider's length bounds.
func (d DeploymentIdentity) StorageAccount() (string, error) {
	base := strings.ToLower(strings.ReplaceAll(d.Prefix, "-", ""))
	name := fmt.Sprintf("%s%s%d", base, storageToken, d.Suffix)

	if len(name) < StorageNameMinLen || len(name) > StorageNameMaxLen {
		return "", fmt.Errorf("storage account name %q is %d chars, must be %d-%d",
			name, len(name), StorageNameMinLen, StorageNameMaxLen)
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return "", fmt.Errorf("storage account name %q contains invalid character %q", name, r)
		}
	}
	return name, nil
}
