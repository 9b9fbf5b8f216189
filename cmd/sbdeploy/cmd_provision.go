package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shiftbase/sbdeploy/config"
	"github.com/shiftbase/sbdeploy/journal"
	"github.com/shiftbase/sbdeploy/naming"
	"github.com/shiftbase/sbdeploy/pipeline"
	"github.com/shiftbase/sbdeploy/providers/azure"
	"github.com/shiftbase/sbdeploy/report"
	"github.com/shiftbase/sbdeploy/telemetry"
)

var provisionDebug bool

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Provision the full resource set and apply settings",
	Long: `Provision runs the ordered pipeline: verify the session, create the
resource group, storage account and telemetry component, create the
function host and apply its application settings.

Any creation failure aborts the run and leaves already created
resources in place. A missing telemetry key or a failed settings
update only logs a warning.`,
	Example: `  sbdeploy provision                    # Use ./sbdeploy.yaml
  sbdeploy provision -c deploy/prod.yaml
  SHIFTBASE_API_KEY=... sbdeploy provision   # Secrets from environment`,
	RunE: runProvision,
}

func init() {
	rootCmd.AddCommand(provisionCmd)
	provisionCmd.Flags().BoolVar(&provisionDebug, "debug", false, "Enable debug logging")
}

func runProvision(cmd *cobra.Command, args []string) error {
	if provisionDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := telemetry.NewLogger("sbdeploy", os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdown := initTelemetry(ctx, logger)
	defer shutdown()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	provider, err := azure.New(ctx, azure.Config{
		Subscription: cfg.Subscription,
		Tags: map[string]string{
			"project":    cfg.Prefix,
			"managed-by": "sbdeploy",
		},
	})
	if err != nil {
		return &pipeline.AuthenticationError{Err: err}
	}

	jnl, err := journal.Open(journalDir)
	if err != nil {
		// The journal is an audit trail; a broken one must not stop a deploy.
		logger.Warn().Err(err).Msg("journal unavailable, continuing without it")
		jnl = nil
	} else {
		defer func() { _ = jnl.Close() }()
	}

	identity := naming.NewIdentity(cfg.Prefix)
	engine := pipeline.NewEngine(provider, cfg, logger, jnl)

	result, runErr := engine.Run(ctx, identity)

	if result.ReachedSettings {
		if err := report.WriteSummary(os.Stdout, result); err != nil {
			logger.Warn().Err(err).Msg("failed to write summary")
		}
	}

	if runErr != nil {
		var authErr *pipeline.AuthenticationError
		if errors.As(runErr, &authErr) {
			logger.Error().Msg("authentication failed, nothing was provisioned")
		}
		return runErr
	}
	return nil
}
