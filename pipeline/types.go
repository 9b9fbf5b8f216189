package pipeline

import (
	"time"

	"github.com/shiftbase/sbdeploy/naming"
	"github.com/shiftbase/sbdeploy/types"
)

// Stage names, in execution order.
const (
	StageVerifySession  = "verify-session"
	StageResourceGroup  = "resource-group"
	StageStorageAccount = "storage-account"
	StageTelemetry      = "telemetry-component"
	StageTelemetryKey   = "telemetry-key"
	StageFunctionHost   = "function-host"
	StageApplySettings  = "apply-settings"
)

// StageStatus tracks the outcome of a single stage.
type StageStatus string

const (
	StatusSuccess StageStatus = "success"
	StatusFailed  StageStatus = "failed"
	StatusWarning StageStatus = "warning"
)

// StageResult is the tagged outcome of one pipeline stage.
type StageResult struct {
	Stage    string        `json:"stage"`
	Status   StageStatus   `json:"status"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Outcome classifies a whole run. Warnings (missing telemetry key, settings
// apply failure) still count as success for the process exit code.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFatal   Outcome = "fatal"
)

// RunResult accumulates everything a run produced: the identity, the account
// context, per-stage outcomes, created resources, the composed settings and
// any warnings.
type RunResult struct {
	Identity  naming.DeploymentIdentity   `json:"identity"`
	Account   types.Account               `json:"account"`
	StartTime time.Time                   `json:"start_time"`
	EndTime   time.Time                   `json:"end_time"`
	Duration  time.Duration               `json:"duration"`
	Outcome   Outcome                     `json:"outcome"`
	Stages    []StageResult               `json:"stages"`
	Resources []types.ProvisionedResource `json:"resources"`
	Settings  types.Settings              `json:"settings,omitempty"`
	Warnings  []string                    `json:"warnings,omitempty"`

	// ReachedSettings is true when the pipeline got as far as composing
	// settings; the summary is only printed in that case.
	ReachedSettings bool `json:"reached_settings"`
}
