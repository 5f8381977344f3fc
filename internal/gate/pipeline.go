package gate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrEmptyCommand = errors.New("empty command")

type State int

const (
	StateNotStarted State = iota
	StateAllPassed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NOT_STARTED"
	case StateAllPassed:
		return "ALL_PASSED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// StepError is the single failure kind the gate produces. It does not
// say why the tool failed; that detail is in the tool's own output,
// which passed through to the operator's streams untouched. Err is set
// only when the step never started, since a process that did not run
// prints nothing the operator could diagnose from.
type StepError struct {
	Step     string
	ExitCode int
	Err      error
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("check %s failed: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("check %s failed with exit code %d", e.Step, e.ExitCode)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Pipeline runs an ordered list of steps, failing fast. A step never
// starts until every prior step has exited zero.
type Pipeline struct {
	steps  []Step
	runner Runner
	echo   io.Writer

	state    State
	failedAt string
}

func NewPipeline(steps []Step, runner Runner, echo io.Writer) *Pipeline {
	return &Pipeline{
		steps:  steps,
		runner: runner,
		echo:   echo,
	}
}

// Run executes every step in declared order. Each resolved command is
// echoed to the diagnostic stream before it runs so the operator can see
// exactly what is executed. The first non-zero exit aborts the run and
// is returned as a *StepError.
func (p *Pipeline) Run(ctx context.Context) error {
	p.state = StateNotStarted
	p.failedAt = ""

	for _, step := range p.steps {
		fmt.Fprintf(p.echo, "+ %s\n", strings.Join(step.Argv, " "))

		code, err := p.runner.Run(ctx, step)
		if err != nil {
			p.state = StateFailed
			p.failedAt = step.Name
			return &StepError{Step: step.Name, ExitCode: 1, Err: err}
		}
		if code != 0 {
			p.state = StateFailed
			p.failedAt = step.Name
			return &StepError{Step: step.Name, ExitCode: code}
		}
	}

	p.state = StateAllPassed
	return nil
}

func (p *Pipeline) State() State {
	return p.state
}

// FailedStep reports which step ended the run, if any.
func (p *Pipeline) FailedStep() (string, bool) {
	return p.failedAt, p.state == StateFailed
}

// ExitCode maps a Run result to the process exit status: zero on
// success, the failing tool's own code when known, one otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var se *StepError
	if errors.As(err, &se) && se.ExitCode > 0 {
		return se.ExitCode
	}
	return 1
}
