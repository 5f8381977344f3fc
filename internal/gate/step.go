package gate

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// DefaultTarget is the package the gate guards when no target is given:
// the progression library this repository exists to publish.
const DefaultTarget = "./internal/program"

// Step is one entry of the gate pipeline. Steps are defined statically
// before a run and never mutated.
type Step struct {
	Name string
	Argv []string
}

// Runner executes a single step and reports its exit code. The error is
// reserved for steps that could not be started at all; a step that ran
// and failed reports a non-zero code with a nil error.
type Runner interface {
	Run(ctx context.Context, step Step) (int, error)
}

// ExecRunner runs steps as external processes with the caller's standard
// streams attached, so tool diagnostics reach the operator verbatim.
type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, step Step) (int, error) {
	if len(step.Argv) == 0 {
		return 0, fmt.Errorf("step %s: %w", step.Name, ErrEmptyCommand)
	}

	cmd := exec.CommandContext(ctx, step.Argv[0], step.Argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode(), nil
	}
	return 0, fmt.Errorf("starting step %s: %w", step.Name, err)
}

// DefaultSteps builds the fixed check sequence for a target package
// directory. Order matters: the cheap static checks run before the
// example tests so a formatting or vet failure short-circuits the
// expensive dynamic step.
func DefaultSteps(target string) []Step {
	return []Step{
		{
			Name: "gofmt",
			// gofmt -l exits zero even when files need rewriting, so
			// the check reports the list itself and fails when it is
			// non-empty.
			Argv: []string{"sh", "-c", fmt.Sprintf(
				`files=$(gofmt -l %s); [ -z "$files" ] || { echo "$files" >&2; exit 1; }`,
				ShellQuote(target))},
		},
		{
			Name: "vet",
			Argv: []string{"go", "vet", target},
		},
		{
			Name: "examples",
			Argv: []string{"go", "test", "-run", "Example", target},
		},
	}
}
