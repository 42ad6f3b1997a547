package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/fenrislabs/lintrun/internal/logging"
)

// MockCommandRunner is a mock implementation of CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(ctx context.Context, tool string, args ...string) (int, error) {
	callArgs := m.Called(ctx, tool, args)
	return callArgs.Int(0), callArgs.Error(1)
}

// newRunnerWithExits builds a mock runner that returns the given exit code
// per tool (zero for tools not listed).
func newRunnerWithExits(exits map[string]int) *MockCommandRunner {
	runner := &MockCommandRunner{}
	for _, step := range Steps() {
		runner.On("Run", mock.Anything, step.Tool, mock.Anything).Return(exits[step.Tool], nil)
	}
	return runner
}

// invokedTools returns the tool names the runner saw, in call order.
func invokedTools(runner *MockCommandRunner) []string {
	tools := make([]string, 0, len(runner.Calls))
	for _, call := range runner.Calls {
		tools = append(tools, call.Arguments.String(1))
	}
	return tools
}

func TestNewExecutor(t *testing.T) {
	runner := &MockCommandRunner{}
	executor := NewExecutor(runner, logging.NewTestLogger().Logger)

	require.NotNil(t, executor)
	assert.Len(t, executor.steps, 4)
}

func TestExecutor_Run_AllSucceed(t *testing.T) {
	runner := newRunnerWithExits(nil)
	executor := NewExecutor(runner, logging.NewTestLogger().Logger)

	state, err := executor.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, RunSucceeded, state.Status)
	assert.Equal(t, TargetPath, state.Target)
	require.Len(t, state.Results, 4)
	for _, result := range state.Results {
		assert.Equal(t, StatusSucceeded, result.Status)
		assert.Equal(t, 0, result.ExitCode)
	}
	assert.Equal(t, []string{"black", "isort", "flake8", "mypy"}, invokedTools(runner))
	runner.AssertExpectations(t)
}

func TestExecutor_Run_FormatterFailureAborts(t *testing.T) {
	runner := newRunnerWithExits(map[string]int{"black": 1})
	executor := NewExecutor(runner, logging.NewTestLogger().Logger)

	state, err := executor.Run(context.Background())

	require.Error(t, err)
	var fatalErr *FatalStepError
	require.ErrorAs(t, err, &fatalErr)
	assert.Equal(t, StepFormat, fatalErr.Step)
	assert.Equal(t, 1, fatalErr.ExitCode)

	assert.Equal(t, RunFailed, state.Status)
	require.Len(t, state.Results, 4)
	assert.Equal(t, StatusFailed, state.Results[0].Status)
	for _, result := range state.Results[1:] {
		assert.Equal(t, StatusSkipped, result.Status)
	}
	runner.AssertNumberOfCalls(t, "Run", 1)
}

func TestExecutor_Run_ImportOrdererFailureAborts(t *testing.T) {
	runner := newRunnerWithExits(map[string]int{"isort": 2})
	executor := NewExecutor(runner, logging.NewTestLogger().Logger)

	state, err := executor.Run(context.Background())

	var fatalErr *FatalStepError
	require.ErrorAs(t, err, &fatalErr)
	assert.Equal(t, StepImports, fatalErr.Step)
	assert.Equal(t, 2, fatalErr.ExitCode)

	assert.Equal(t, RunFailed, state.Status)
	assert.Equal(t, []string{"black", "isort"}, invokedTools(runner))
	assert.Equal(t, StatusSucceeded, state.Results[0].Status)
	assert.Equal(t, StatusFailed, state.Results[1].Status)
	assert.Equal(t, StatusSkipped, state.Results[2].Status)
	assert.Equal(t, StatusSkipped, state.Results[3].Status)
}

func TestExecutor_Run_StyleFindingsTolerated(t *testing.T) {
	runner := newRunnerWithExits(map[string]int{"flake8": 1})
	logger := logging.NewTestLogger()
	executor := NewExecutor(runner, logger.Logger)

	state, err := executor.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, RunSucceeded, state.Status)
	assert.Equal(t, []string{"black", "isort", "flake8", "mypy"}, invokedTools(runner))
	assert.Equal(t, StatusFailed, state.Results[2].Status)
	assert.Equal(t, 1, state.Results[2].ExitCode)
	assert.Equal(t, StatusSucceeded, state.Results[3].Status)

	logger.AssertLogged(t, zapcore.WarnLevel, "advisory step reported findings")
	logger.AssertNotLogged(t, zapcore.ErrorLevel, "fatal step failed")
}

func TestExecutor_Run_TypecheckFindingsTolerated(t *testing.T) {
	runner := newRunnerWithExits(map[string]int{"mypy": 1})
	executor := NewExecutor(runner, logging.NewTestLogger().Logger)

	state, err := executor.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, RunSucceeded, state.Status)
	require.Len(t, state.Results, 4)
	assert.Equal(t, StatusFailed, state.Results[3].Status)
	runner.AssertNumberOfCalls(t, "Run", 4)
}

func TestExecutor_Run_ToolMissingAborts(t *testing.T) {
	runner := &MockCommandRunner{}
	missing := &ToolMissingError{Tool: "black", Err: errors.New("executable file not found in $PATH")}
	runner.On("Run", mock.Anything, "black", mock.Anything).Return(-1, missing)
	executor := NewExecutor(runner, logging.NewTestLogger().Logger)

	state, err := executor.Run(context.Background())

	var missingErr *ToolMissingError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "black", missingErr.Tool)

	assert.Equal(t, RunFailed, state.Status)
	require.Len(t, state.Results, 4)
	assert.Equal(t, StatusFailed, state.Results[0].Status)
	for _, result := range state.Results[1:] {
		assert.Equal(t, StatusSkipped, result.Status)
	}
	runner.AssertNumberOfCalls(t, "Run", 1)
}

func TestExecutor_Run_ImportOrdererSkipArguments(t *testing.T) {
	runner := newRunnerWithExits(nil)
	executor := NewExecutor(runner, logging.NewTestLogger().Logger)

	_, err := executor.Run(context.Background())
	require.NoError(t, err)

	var isortArgs []string
	for _, call := range runner.Calls {
		if call.Arguments.String(1) == "isort" {
			isortArgs = call.Arguments.Get(2).([]string)
		}
	}
	require.NotNil(t, isortArgs)
	assert.Contains(t, isortArgs, ".history")
	assert.Contains(t, isortArgs, ".venv")
}

func TestExecutor_Run_ContextCancelled(t *testing.T) {
	runner := &MockCommandRunner{}
	executor := NewExecutor(runner, logging.NewTestLogger().Logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state, err := executor.Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, RunFailed, state.Status)
	require.Len(t, state.Results, 4)
	for _, result := range state.Results {
		assert.Equal(t, StatusSkipped, result.Status)
	}
	runner.AssertNumberOfCalls(t, "Run", 0)
}
