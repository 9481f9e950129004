package main

import (
	"fmt"
	"os"

	"github.com/L-JANUSZ/BackupBuffer/pkg/console"
	"github.com/L-JANUSZ/BackupBuffer/pkg/core"
	"github.com/L-JANUSZ/BackupBuffer/pkg/runner"
	"github.com/spf13/afero"
)

func main() {
	dir, err := core.ProgramDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not determine program directory: %v\n", err)
		dir = "."
	}

	logger, err := core.SetupLogger(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Log file unavailable, logging to stderr: %v\n", err)
		logger = core.NewLogger(os.Stderr, core.LevelDebug)
	}
	defer logger.Close()

	runner.Run(runner.Options{
		Dir:     dir,
		Fs:      afero.NewOsFs(),
		Stdout:  os.Stdout,
		Stdin:   os.Stdin,
		Console: console.New(),
		Logger:  logger,
	})
}
