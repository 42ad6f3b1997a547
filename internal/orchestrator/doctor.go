package orchestrator

import (
	"os/exec"
)

// ToolCheck reports whether one pipeline tool resolves on PATH.
type ToolCheck struct {
	Tool string
	Path string
	Err  error
}

// Doctor resolves every pipeline tool without running any of them. It is
// read-only preflight: a missing tool here is the same ToolMissing condition
// a run would hit, caught before the formatter has touched any file.
func Doctor() []ToolCheck {
	steps := Steps()
	checks := make([]ToolCheck, 0, len(steps))
	seen := make(map[string]bool, len(steps))

	for _, step := range steps {
		if seen[step.Tool] {
			continue
		}
		seen[step.Tool] = true

		path, err := exec.LookPath(step.Tool)
		checks = append(checks, ToolCheck{Tool: step.Tool, Path: path, Err: err})
	}

	return checks
}
