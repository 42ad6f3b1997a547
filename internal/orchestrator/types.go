package orchestrator

import (
	"time"
)

// Policy decides how the executor reacts to a step's non-zero exit.
type Policy string

const (
	// PolicyFatal aborts the remaining sequence and fails the run.
	PolicyFatal Policy = "fatal"

	// PolicyAdvisory records the failure and continues with the next step.
	PolicyAdvisory Policy = "advisory"
)

// Step describes one tool invocation in the pipeline. Steps are defined
// statically by Steps() and never mutated at runtime.
type Step struct {
	Name   string
	Tool   string
	Args   []string
	Policy Policy
}

// StepStatus represents the completion status of a step.
type StepStatus string

const (
	StatusPending   StepStatus = "pending"
	StatusSucceeded StepStatus = "succeeded"
	StatusFailed    StepStatus = "failed"
	StatusSkipped   StepStatus = "skipped"
)

// StepResult captures the outcome of a single step execution.
type StepResult struct {
	Step        Step
	Status      StepStatus
	ExitCode    int
	StartedAt   time.Time
	CompletedAt time.Time
	Err         string
}

// Duration returns how long the step ran. Zero for skipped steps.
func (r StepResult) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

// RunStatus represents the overall outcome of a pipeline run.
type RunStatus string

const (
	RunInProgress RunStatus = "in_progress"
	RunSucceeded  RunStatus = "succeeded"
	RunFailed     RunStatus = "failed"
)

// RunState is the complete record of one pipeline run: one StepResult per
// step, in execution order, plus the overall status. Advisory failures
// appear as failed step results inside a succeeded run.
type RunState struct {
	Target    string
	Results   []StepResult
	Status    RunStatus
	StartedAt time.Time
}

// NewRunState creates the state for a run that has not started any step.
func NewRunState(target string, steps int) *RunState {
	return &RunState{
		Target:    target,
		Results:   make([]StepResult, 0, steps),
		Status:    RunInProgress,
		StartedAt: time.Now(),
	}
}
