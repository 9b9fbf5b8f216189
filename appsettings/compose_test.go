package appsettings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbase/sbdeploy/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Version:      "v1",
		Prefix:       "shiftbase-sync",
		Subscription: "sub",
		Location:     "westeurope",
		App: config.App{
			APIURL:             "https://api.shiftbase.com/api",
			APIKey:             "super-secret-key",
			DBConnectionString: "Server=db;Database=sync",
			DBTargetTable:      "shift_report",
		},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestCompose_WithoutTelemetryKey(t *testing.T) {
	settings := Compose(testConfig(t), "")

	// 7 entries: no telemetry setting when the key was not retrieved.
	require.Len(t, settings, 7)

	_, ok := settings.Get(KeyTelemetry)
	assert.False(t, ok, "telemetry setting must be omitted without a key")

	for _, key := range []string{
		KeyWorkerRuntime, KeyExtensionVersion, KeyRunFromPackage,
		KeyAPIURL, KeyAPIKey, KeyDBConnection, KeyDBTargetTable,
	} {
		_, ok := settings.Get(key)
		assert.True(t, ok, "missing required key %s", key)
	}
}

func TestCompose_WithTelemetryKey(t *testing.T) {
	settings := Compose(testConfig(t), "abc-123")

	require.Len(t, settings, 8)

	value, ok := settings.Get(KeyTelemetry)
	require.True(t, ok)
	assert.Equal(t, "InstrumentationKey=abc-123", value)
}

func TestCompose_SecretFlags(t *testing.T) {
	settings := Compose(testConfig(t), "abc-123")

	secret := map[string]bool{}
	for _, s := range settings {
		secret[s.Key] = s.Secret
	}

	// The secret set is fixed: API key, DB connection string and the
	// telemetry connection string carrying the embedded key.
	assert.True(t, secret[KeyAPIKey])
	assert.True(t, secret[KeyDBConnection])
	assert.True(t, secret[KeyTelemetry])

	assert.False(t, secret[KeyAPIURL])
	assert.False(t, secret[KeyDBTargetTable])
	assert.False(t, secret[KeyWorkerRuntime])
	assert.False(t, secret[KeyExtensionVersion])
	assert.False(t, secret[KeyRunFromPackage])
}

func TestCompose_Order(t *testing.T) {
	settings := Compose(testConfig(t), "abc-123")

	assert.Equal(t, []string{
		KeyWorkerRuntime, KeyExtensionVersion, KeyRunFromPackage,
		KeyAPIURL, KeyAPIKey, KeyDBConnection, KeyDBTargetTable,
		KeyTelemetry,
	}, settings.Keys())
}
