package main

import (
	"context"
	"os"

	"github.com/shiftbase/sbdeploy/telemetry"
)

// initTelemetry initializes OTEL tracing.
// Can be disabled with SBDEPLOY_TELEMETRY_DISABLED=true
func initTelemetry(ctx context.Context, logger *telemetry.Logger) func() {
	if os.Getenv("SBDEPLOY_TELEMETRY_DISABLED") == "true" {
		return func() {}
	}

	cfg := telemetry.Config{
		ServiceName:    "sbdeploy",
		ServiceVersion: version,
		Environment:    os.Getenv("SBDEPLOY_ENVIRONMENT"),
		OTELEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Insecure:       true, // For local development
	}

	shutdown, err := telemetry.InitOTEL(ctx, cfg)
	if err != nil {
		// Don't fail the deploy if OTEL init fails - just warn
		logger.Warn().Err(err).Msg("telemetry initialization failed, running without it")
		return func() {}
	}

	return func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("error shutting down telemetry")
		}
	}
}
