// Package appsettings builds the ordered application settings injected into
// the function host.
package appsettings

import (
	"github.com/shiftbase/sbdeploy/config"
	"github.com/shiftbase/sbdeploy/types"
)

// Fixed setting keys understood by the functions host.
const (
	KeyWorkerRuntime    = "FUNCTIONS_WORKER_RUNTIME"
	KeyExtensionVersion = "FUNCTIONS_EXTENSION_VERSION"
	KeyRunFromPackage   = "WEBSITE_RUN_FROM_PACKAGE"
	KeyAPIURL           = "SHIFTBASE_API_URL"
	KeyAPIKey           = "SHIFTBASE_API_KEY"
	KeyDBConnection     = "DB_CONNECTION_STRING"
	KeyDBTargetTable    = "DB_TARGET_TABLE"
	KeyTelemetry        = "APPLICATIONINSIGHTS_CONNECTION_STRING"
)

// Compose builds the settings list in its fixed order. The telemetry entry is
// appended only when a non-empty instrumentation key was retrieved; a broken
// or partial value is never set. The API key, the database connection string
// and any embedded telemetry key are secret for display purposes.
func Compose(cfg *config.Config, telemetryKey string) types.Settings {
	settings := types.Settings{
		{Key: KeyWorkerRuntime, Value: cfg.Runtime.Worker},
		{Key: KeyExtensionVersion, Value: cfg.Runtime.ExtensionVersion},
		{Key: KeyRunFromPackage, Value: "1"},
		{Key: KeyAPIURL, Value: cfg.App.APIURL},
		{Key: KeyAPIKey, Value: cfg.App.APIKey, Secret: true},
		{Key: KeyDBConnection, Value: cfg.App.DBConnectionString, Secret: true},
		{Key: KeyDBTargetTable, Value: cfg.App.DBTargetTable},
	}

	if telemetryKey != "" {
		settings = append(settings, types.Setting{
			Key:    KeyTelemetry,
			Value:  "InstrumentationKey=" + telemetryKey,
			Secret: true,
		})
	}

	return settings
}
