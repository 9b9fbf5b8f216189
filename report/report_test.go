package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbase/sbdeploy/naming"
	"github.com/shiftbase/sbdeploy/pipeline"
	"github.com/shiftbase/sbdeploy/types"
)

func testResult() *pipeline.RunResult {
	return &pipeline.RunResult{
		Identity: naming.DeploymentIdentity{Prefix: "shiftbase-sync", Suffix: 4821},
		Account:  types.Account{SubscriptionID: "sub-1", DisplayName: "Test Sub"},
		Outcome:  pipeline.OutcomeSuccess,
		Resources: []types.ProvisionedResource{
			{Kind: types.KindResourceGroup, Name: "shiftbase-sync-rg-4821", Location: "westeurope"},
			{Kind: types.KindStorageAccount, Name: "shiftbasesyncstor4821", Location: "westeurope"},
			{Kind: types.KindFunctionHost, Name: "shiftbase-sync-func-4821", Location: "westeurope"},
		},
		Settings: types.Settings{
			{Key: "SHIFTBASE_API_URL", Value: "https://api.shiftbase.com/api"},
			{Key: "SHIFTBASE_API_KEY", Value: "super-secret-key", Secret: true},
			{Key: "DB_CONNECTION_STRING", Value: "Server=db;Password=hunter2", Secret: true},
			{Key: "DB_TARGET_TABLE", Value: "shift_report"},
		},
		ReachedSettings: true,
	}
}

func TestWriteSummary_MasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, testResult()))
	out := buf.String()

	// Secret values never appear, not even partially.
	assert.NotContains(t, out, "super-secret-key")
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, types.MaskToken)

	// Public values are printed in plaintext.
	assert.Contains(t, out, "https://api.shiftbase.com/api")
	assert.Contains(t, out, "shift_report")
}

func TestWriteSummary_ListsResources(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, testResult()))
	out := buf.String()

	assert.Contains(t, out, "shiftbase-sync-rg-4821")
	assert.Contains(t, out, "shiftbasesyncstor4821")
	assert.Contains(t, out, "shiftbase-sync-func-4821")
	assert.Contains(t, out, "westeurope")
}

func TestWriteSummary_SkipsSettingsBeforeSettingsStage(t *testing.T) {
	result := testResult()
	result.ReachedSettings = false

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, result))

	assert.NotContains(t, buf.String(), "Settings:")
}

func TestWriteSummary_PrintsWarnings(t *testing.T) {
	result := testResult()
	result.Warnings = []string{"telemetry key unavailable: not ready"}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, result))

	assert.Contains(t, buf.String(), "Warning: telemetry key unavailable")
}
