package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liftlab/swole/internal/infrastructure/logger"
	"github.com/liftlab/swole/internal/program"
	"github.com/liftlab/swole/internal/render"
)

var (
	RoundTo     float64
	TrainingMax float64
	AsTable     bool
	ShowVersion bool
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "swole <program.yaml>",
	Short: "Lifting progression tool",
	Long:  "Swole loads a lifting program from YAML and prints out the training progression.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if ShowVersion {
			fmt.Println(Version)
			return nil
		}
		if len(args) == 0 {
			return errors.New("program file required")
		}
		return runShow(cmd, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&RoundTo, "round", program.DefaultRounding, "Round weights down to the nearest value")
	rootCmd.PersistentFlags().Float64Var(&TrainingMax, "tm", 0, "Training max to resolve percentages against")
	rootCmd.Flags().BoolVar(&AsTable, "table", false, "Print tabular output")
	rootCmd.PersistentFlags().BoolVarP(&ShowVersion, "version", "v", false, "Show version information")
}

func runShow(cmd *cobra.Command, path string) error {
	p, err := program.LoadFile(path)
	if err != nil {
		return err
	}

	logger.Debug("program loaded", "name", p.Name, "mesos", len(p.Mesos))

	if AsTable {
		render.Table(cmd.OutOrStdout(), p, TrainingMax, RoundTo)
		return nil
	}
	render.Plain(cmd.OutOrStdout(), p, TrainingMax, RoundTo)
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
