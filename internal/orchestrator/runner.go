package orchestrator

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// CommandRunner abstracts external tool invocation for the executor.
type CommandRunner interface {
	// Run blocks until the tool exits and returns its exit code. The error
	// is non-nil only when the tool could not be run at all; a tool that
	// runs and exits non-zero is not an error at this level.
	Run(ctx context.Context, tool string, args ...string) (int, error)
}

// ExecRunner runs tools as local child processes. Stdout and stderr are
// inherited from the parent so diagnostics reach the console without being
// captured or parsed.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, tool string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return -1, &ToolMissingError{Tool: tool, Err: err}
	}

	return -1, err
}
