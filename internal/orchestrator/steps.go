package orchestrator

// TargetPath is the single source tree every step operates on. The
// orchestrator never creates or modifies it; the formatter and import
// orderer rewrite files under it in place.
const TargetPath = "app"

// Step names, in execution order.
const (
	StepFormat    = "format"
	StepImports   = "imports"
	StepStyle     = "style"
	StepTypecheck = "typecheck"
)

// Directories the import orderer must never descend into. Both are passed
// on every run, whether or not they exist on disk.
const (
	historyDir = ".history"
	venvDir    = ".venv"
)

// Steps returns the pipeline in execution order. The formatter and import
// orderer are correctness gates; the style and type checkers are advisory.
func Steps() []Step {
	return []Step{
		{
			Name:   StepFormat,
			Tool:   "black",
			Args:   []string{TargetPath},
			Policy: PolicyFatal,
		},
		{
			Name:   StepImports,
			Tool:   "isort",
			Args:   []string{TargetPath, "--skip", historyDir, "--skip", venvDir},
			Policy: PolicyFatal,
		},
		{
			Name:   StepStyle,
			Tool:   "flake8",
			Args:   []string{TargetPath},
			Policy: PolicyAdvisory,
		},
		{
			Name:   StepTypecheck,
			Tool:   "mypy",
			Args:   []string{"--explicit-package-bases", TargetPath},
			Policy: PolicyAdvisory,
		},
	}
}
