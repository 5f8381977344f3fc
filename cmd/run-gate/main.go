package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/liftlab/swole/internal/gate"
	"github.com/liftlab/swole/internal/infrastructure/logger"
	"github.com/liftlab/swole/internal/interfaces/cli"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("SWOLE_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logger.Init(&logger.Config{
		Level:  logLevel,
		Format: os.Getenv("SWOLE_LOG_FORMAT"),
	})

	if err := cli.NewGateCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(gate.ExitCode(err))
	}
}
