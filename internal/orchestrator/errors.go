package orchestrator

import (
	"fmt"
)

// ToolMissingError reports a tool binary that could not be located or
// executed at all. It aborts the run regardless of the step's policy.
type ToolMissingError struct {
	Tool string
	Err  error
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("tool %q not found or not executable: %v", e.Tool, e.Err)
}

func (e *ToolMissingError) Unwrap() error {
	return e.Err
}

// FatalStepError reports a non-zero exit from a fatal-policy step. The
// remaining steps were not run.
type FatalStepError struct {
	Step     string
	ExitCode int
}

func (e *FatalStepError) Error() string {
	return fmt.Sprintf("fatal step %q failed with exit code %d", e.Step, e.ExitCode)
}
