// Package orchestrator runs the fixed code-quality pipeline against the
// target source tree.
//
// The pipeline is a flat ordered sequence of four external tools, each
// described by a Step carrying the tool name, its argument list, and a
// failure policy:
//
//	format (black) → imports (isort) → style (flake8) → typecheck (mypy)
//
// Steps with PolicyFatal are correctness gates: a non-zero exit aborts the
// remaining sequence and fails the run. Steps with PolicyAdvisory are
// informational: their exit status is recorded but never fails the run and
// never stops later steps.
//
// Tool processes inherit the parent's stdout and stderr. The orchestrator
// never captures or interprets tool output; its only input from a tool is
// the exit code.
//
// All major components (CommandRunner) are defined as interfaces for
// testability; ExecRunner is the os/exec-backed implementation used by the
// CLI.
package orchestrator
