// Package pipeline runs the ordered provisioning stages: session guard,
// resource group, storage account, telemetry component, function host,
// settings. Fatal stage errors abort the rest of the run; there is no
// rollback of resources already created.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/shiftbase/sbdeploy/appsettings"
	"github.com/shiftbase/sbdeploy/config"
	"github.com/shiftbase/sbdeploy/journal"
	"github.com/shiftbase/sbdeploy/naming"
	"github.com/shiftbase/sbdeploy/providers"
	"github.com/shiftbase/sbdeploy/telemetry"
	"github.com/shiftbase/sbdeploy/types"
)

// Engine drives the provisioning pipeline against a control plane.
type Engine struct {
	cp      providers.ControlPlane
	cfg     *config.Config
	logger  *telemetry.Logger
	journal *journal.Journal
}

// NewEngine creates a pipeline engine. The journal may be nil; journal
// failures are never fatal either way.
func NewEngine(cp providers.ControlPlane, cfg *config.Config, logger *telemetry.Logger, jnl *journal.Journal) *Engine {
	return &Engine{cp: cp, cfg: cfg, logger: logger, journal: jnl}
}

// Run executes the whole pipeline for one deployment identity. The returned
// error is non-nil only for fatal outcomes; warnings are collected in the
// result and the run still counts as success.
func (e *Engine) Run(ctx context.Context, identity naming.DeploymentIdentity) (*RunResult, error) {
	result := &RunResult{
		Identity:  identity,
		StartTime: time.Now(),
		Outcome:   OutcomeSuccess,
	}

	err := e.run(ctx, identity, result)

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	if err != nil {
		result.Outcome = OutcomeFatal
	}

	e.record(ctx, result)
	return result, err
}

func (e *Engine) run(ctx context.Context, identity naming.DeploymentIdentity, result *RunResult) error {
	// Names are derived and validated before any cloud call.
	storageName, err := identity.StorageAccount()
	if err != nil {
		return &NamingError{Err: err}
	}
	groupName := identity.ResourceGroup()
	hostName := identity.FunctionHost()
	telemetryName := identity.TelemetryComponent()

	if err := e.verifySession(ctx, result); err != nil {
		return err
	}

	if err := e.provision(ctx, result, StageResourceGroup, groupName, func(ctx context.Context) (types.ProvisionedResource, error) {
		return e.cp.CreateResourceGroup(ctx, groupName, e.cfg.Location)
	}); err != nil {
		return err
	}

	if err := e.provision(ctx, result, StageStorageAccount, storageName, func(ctx context.Context) (types.ProvisionedResource, error) {
		return e.cp.CreateStorageAccount(ctx, groupName, storageName, e.cfg.Location)
	}); err != nil {
		return err
	}

	if err := e.provision(ctx, result, StageTelemetry, telemetryName, func(ctx context.Context) (types.ProvisionedResource, error) {
		return e.cp.CreateTelemetryComponent(ctx, groupName, telemetryName, e.cfg.Location)
	}); err != nil {
		return err
	}

	telemetryKey := e.readTelemetryKey(ctx, result, groupName, telemetryName)

	if err := e.provision(ctx, result, StageFunctionHost, hostName, func(ctx context.Context) (types.ProvisionedResource, error) {
		return e.cp.CreateFunctionHost(ctx, types.FunctionHostSpec{
			Name:               hostName,
			Group:              groupName,
			Location:           e.cfg.Location,
			StorageAccount:     storageName,
			TelemetryComponent: telemetryName,
			Runtime:            e.cfg.Runtime.Worker,
			RuntimeVersion:     e.cfg.Runtime.Version,
			ExtensionVersion:   e.cfg.Runtime.ExtensionVersion,
		})
	}); err != nil {
		return err
	}

	result.Settings = appsettings.Compose(e.cfg, telemetryKey)
	result.ReachedSettings = true

	e.applySettings(ctx, result, groupName, hostName)
	return nil
}

// verifySession is the session guard: fatal on any failure, no provisioning
// call is attempted afterwards.
func (e *Engine) verifySession(ctx context.Context, result *RunResult) error {
	ctx, span := telemetry.Tracer.Start(ctx, StageVerifySession)
	defer span.End()

	start := time.Now()
	account, err := e.cp.VerifySession(ctx)
	if err != nil {
		e.logger.LogStageError(ctx, StageVerifySession, err)
		result.Stages = append(result.Stages, StageResult{
			Stage:    StageVerifySession,
			Status:   StatusFailed,
			Error:    err.Error(),
			Duration: time.Since(start),
		})
		return &AuthenticationError{Err: err}
	}

	result.Account = account
	result.Stages = append(result.Stages, StageResult{
		Stage:    StageVerifySession,
		Status:   StatusSuccess,
		Duration: time.Since(start),
	})
	e.logger.WithContext(ctx).Info().
		Str("subscription", account.SubscriptionID).
		Str("account", account.DisplayName).
		Msg("session verified")
	return nil
}

// provision runs one fatal creation stage.
func (e *Engine) provision(ctx context.Context, result *RunResult, stage, name string, create func(context.Context) (types.ProvisionedResource, error)) error {
	ctx, span := telemetry.Tracer.Start(ctx, stage)
	defer span.End()
	span.SetAttributes(attribute.String("resource.name", name))

	e.logger.LogStageStart(ctx, stage, name)
	start := time.Now()

	resource, err := create(ctx)
	duration := time.Since(start)
	if err != nil {
		e.logger.LogStageError(ctx, stage, err)
		result.Stages = append(result.Stages, StageResult{
			Stage:    stage,
			Status:   StatusFailed,
			Error:    err.Error(),
			Duration: duration,
		})
		return &ResourceCreationError{Stage: stage, Err: err}
	}

	result.Resources = append(result.Resources, resource)
	result.Stages = append(result.Stages, StageResult{
		Stage:    stage,
		Status:   StatusSuccess,
		Duration: duration,
	})
	e.logger.LogStageSuccess(ctx, stage, name, float64(duration.Milliseconds()))
	return nil
}

// readTelemetryKey is the one non-fatal read: a missing or unreadable key
// degrades to a warning and the telemetry setting is omitted downstream.
func (e *Engine) readTelemetryKey(ctx context.Context, result *RunResult, group, name string) string {
	ctx, span := telemetry.Tracer.Start(ctx, StageTelemetryKey)
	defer span.End()

	start := time.Now()
	key, err := e.cp.TelemetryKey(ctx, group, name)
	duration := time.Since(start)

	if err != nil || key == "" {
		if err == nil {
			err = fmt.Errorf("telemetry component %s has no instrumentation key yet", name)
		}
		e.logger.LogStageWarning(ctx, StageTelemetryKey, err)
		result.Stages = append(result.Stages, StageResult{
			Stage:    StageTelemetryKey,
			Status:   StatusWarning,
			Error:    err.Error(),
			Duration: duration,
		})
		result.Warnings = append(result.Warnings, fmt.Sprintf("telemetry key unavailable: %v", err))
		return ""
	}

	result.Stages = append(result.Stages, StageResult{
		Stage:    StageTelemetryKey,
		Status:   StatusSuccess,
		Duration: duration,
	})
	return key
}

// applySettings pushes the composed settings to the function host. Failure is
// a warning: the resources exist, they are just unconfigured.
func (e *Engine) applySettings(ctx context.Context, result *RunResult, group, host string) {
	ctx, span := telemetry.Tracer.Start(ctx, StageApplySettings)
	defer span.End()

	start := time.Now()
	err := e.cp.ApplySettings(ctx, group, host, result.Settings)
	duration := time.Since(start)

	if err != nil {
		e.logger.LogStageWarning(ctx, StageApplySettings, err)
		result.Stages = append(result.Stages, StageResult{
			Stage:    StageApplySettings,
			Status:   StatusWarning,
			Error:    err.Error(),
			Duration: duration,
		})
		result.Warnings = append(result.Warnings, fmt.Sprintf("settings not applied: %v", err))
		return
	}

	result.Stages = append(result.Stages, StageResult{
		Stage:    StageApplySettings,
		Status:   StatusSuccess,
		Duration: duration,
	})
	e.logger.LogStageSuccess(ctx, StageApplySettings, host, float64(duration.Milliseconds()))
}

// record appends the run to the journal; failures only warn.
func (e *Engine) record(ctx context.Context, result *RunResult) {
	if e.journal == nil {
		return
	}

	// Secret values never reach disk; the journal stores the masked copy.
	redacted := *result
	redacted.Settings = result.Settings.Redacted()

	runID := fmt.Sprintf("%s-%d", result.Identity.Prefix, result.Identity.Suffix)
	if err := e.journal.Record(runID, string(result.Outcome), &redacted); err != nil {
		e.logger.WithContext(ctx).Warn().Err(err).Msg("failed to record run in journal")
	}
}
