package orchestrator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fenrislabs/lintrun/internal/logging"
)

// Executor runs the pipeline steps in order with per-step failure policy.
type Executor struct {
	runner CommandRunner
	logger *logging.Logger
	steps  []Step
}

// NewExecutor creates an executor over the fixed pipeline.
func NewExecutor(runner CommandRunner, logger *logging.Logger) *Executor {
	return &Executor{
		runner: runner,
		logger: logger,
		steps:  Steps(),
	}
}

// Run invokes each step exactly once, in order, blocking on each tool until
// it exits. A non-zero exit from a fatal step aborts the remaining steps and
// fails the run; a non-zero exit from an advisory step is recorded and the
// run continues. A tool that cannot be located or executed aborts the run
// regardless of policy.
//
// The returned RunState always holds one result per step; steps that were
// never invoked are marked skipped.
func (e *Executor) Run(ctx context.Context) (*RunState, error) {
	state := NewRunState(TargetPath, len(e.steps))

	for i, step := range e.steps {
		select {
		case <-ctx.Done():
			state.Status = RunFailed
			e.skipRemaining(state, i)
			return state, ctx.Err()
		default:
		}

		e.logger.Info(ctx, "starting step",
			zap.String("step", step.Name),
			zap.String("tool", step.Tool),
			zap.Strings("args", step.Args),
			zap.String("policy", string(step.Policy)),
		)

		result := StepResult{Step: step, Status: StatusPending, StartedAt: time.Now()}
		exitCode, err := e.runner.Run(ctx, step.Tool, step.Args...)
		result.CompletedAt = time.Now()
		result.ExitCode = exitCode

		if err != nil {
			result.Status = StatusFailed
			result.Err = err.Error()
			state.Results = append(state.Results, result)
			state.Status = RunFailed
			e.skipRemaining(state, i+1)
			e.logger.Error(ctx, "step could not run",
				zap.String("step", step.Name),
				zap.String("tool", step.Tool),
				zap.Error(err),
			)
			return state, err
		}

		if exitCode != 0 {
			result.Status = StatusFailed
			state.Results = append(state.Results, result)

			if step.Policy == PolicyFatal {
				state.Status = RunFailed
				e.skipRemaining(state, i+1)
				e.logger.Error(ctx, "fatal step failed",
					zap.String("step", step.Name),
					zap.String("tool", step.Tool),
					zap.Int("exit_code", exitCode),
				)
				return state, &FatalStepError{Step: step.Name, ExitCode: exitCode}
			}

			e.logger.Warn(ctx, "advisory step reported findings",
				zap.String("step", step.Name),
				zap.String("tool", step.Tool),
				zap.Int("exit_code", exitCode),
			)
			continue
		}

		result.Status = StatusSucceeded
		state.Results = append(state.Results, result)
		e.logger.Info(ctx, "step completed",
			zap.String("step", step.Name),
			zap.Duration("duration", result.Duration()),
		)
	}

	state.Status = RunSucceeded
	e.logger.Info(ctx, "pipeline completed",
		zap.String("target", state.Target),
		zap.Duration("duration", time.Since(state.StartedAt)),
	)
	return state, nil
}

// skipRemaining records skipped results for steps that will never run.
func (e *Executor) skipRemaining(state *RunState, from int) {
	for _, step := range e.steps[from:] {
		state.Results = append(state.Results, StepResult{Step: step, Status: StatusSkipped})
	}
}
