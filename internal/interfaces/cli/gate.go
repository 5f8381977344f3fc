package cli

import (
	"github.com/spf13/cobra"

	"github.com/liftlab/swole/internal/gate"
	"github.com/liftlab/swole/internal/infrastructure/logger"
)

// NewGateCommand builds the run-gate entry point: run the fixed check
// sequence against a package directory, stopping at the first failure.
// The failing tool's exit code becomes the process exit code.
func NewGateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run-gate [package]",
		Short: "Run the quality gate against a package",
		Long: "Run the format check, go vet, and example tests against a package\n" +
			"directory in order, stopping at the first failure.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := gate.DefaultTarget
			if len(args) > 0 {
				target = args[0]
			}

			lock := gate.NewRunLock(".")
			if err := lock.Acquire(); err != nil {
				return err
			}
			defer lock.Release()

			logger.Debug("gate starting", "target", target)

			p := gate.NewPipeline(gate.DefaultSteps(target), gate.NewExecRunner(), cmd.ErrOrStderr())
			return p.Run(cmd.Context())
		},
	}
}
