package naming

import (
	"strconv"
	"strings"
	"testing"
)

func TestStorageAccount(t *testing.T) {
	tests := []struct {
		name     string
		identity DeploymentIdentity
		want     string
		wantErr  bool
	}{
		{
			name:     "shiftbase sync prefix",
			identity: DeploymentIdentity{Prefix: "shiftbase-sync", Suffix: 4821},
			want:     "shiftbasesyncstor4821",
		},
		{
			name:     "single word prefix",
			identity: DeploymentIdentity{Prefix: "demo", Suffix: 1000},
			want:     "demostor1000",
		},
		{
			name:     "uppercase prefix is lowered",
			identity: DeploymentIdentity{Prefix: "Shift-Base", Suffix: 2345},
			want:     "shiftbasestor2345",
		},
		{
			name:     "too long prefix",
			identity: DeploymentIdentity{Prefix: "extremely-long-project-prefix-name", Suffix: 9999},
			wantErr:  true,
		},
		{
			name:     "invalid character survives normalization",
			identity: DeploymentIdentity{Prefix: "shift_base", Suffix: 1234},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.identity.StorageAccount()
			if (err != nil) != tt.wantErr {
				t.Fatalf("StorageAccount() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("StorageAccount() = %q, want %q", got, tt.want)
			}
			if len(got) < StorageNameMinLen || len(got) > StorageNameMaxLen {
				t.Errorf("length %d outside [%d, %d]", len(got), StorageNameMinLen, StorageNameMaxLen)
			}
			if got != strings.ToLower(got) {
				t.Errorf("name %q is not lowercase", got)
			}
			if strings.Contains(got, "-") {
				t.Errorf("name %q contains a hyphen", got)
			}
		})
	}
}

func TestDerivedNamesContainPrefix(t *testing.T) {
	identity := DeploymentIdentity{Prefix: "shiftbase-sync", Suffix: 4821}

	if got := identity.ResourceGroup(); got != "shiftbase-sync-rg-4821" {
		t.Errorf("ResourceGroup() = %q", got)
	}
	if got := identity.FunctionHost(); got != "shiftbase-sync-func-4821" {
		t.Errorf("FunctionHost() = %q", got)
	}
	if got := identity.TelemetryComponent(); got != "appi-shiftbase-sync-func-4821" {
		t.Errorf("TelemetryComponent() = %q", got)
	}

	storage, err := identity.StorageAccount()
	if err != nil {
		t.Fatalf("StorageAccount() error = %v", err)
	}
	normalized := strings.ReplaceAll(identity.Prefix, "-", "")
	if !strings.Contains(storage, normalized) {
		t.Errorf("storage name %q does not contain normalized prefix %q", storage, normalized)
	}
}

func TestNewIdentitySuffixRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		identity := NewIdentity("shiftbase-sync")
		if identity.Suffix < 1000 || identity.Suffix > 9999 {
			t.Fatalf("suffix %d outside 4-digit range", identity.Suffix)
		}
	}
}

func TestIdentityReusedAcrossDerivations(t *testing.T) {
	identity := NewIdentity("shiftbase-sync")

	group := identity.ResourceGroup()
	host := identity.FunctionHost()
	component := identity.TelemetryComponent()

	// All names carry the same suffix; nothing regenerates mid-run.
	suffix := strconv.Itoa(identity.Suffix)
	for _, name := range []string{group, host, component} {
		if !strings.HasSuffix(name, suffix) {
			t.Errorf("name %q does not end with suffix %s", name, suffix)
		}
	}
}
