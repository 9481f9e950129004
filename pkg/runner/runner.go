// Package runner drives one pruning run from configuration to report.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/L-JANUSZ/BackupBuffer/pkg/console"
	"github.com/L-JANUSZ/BackupBuffer/pkg/constants"
	"github.com/L-JANUSZ/BackupBuffer/pkg/core"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeConfigFailure
	OutcomeCrash
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeConfigFailure:
		return "config_failure"
	case OutcomeCrash:
		return "crash"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Options carries the dependencies of a run. Zero fields fall back to the
// real process environment.
type Options struct {
	Dir     string // holds cfg.txt
	Fs      afero.Fs
	Stdout  io.Writer
	Stdin   io.Reader
	Console console.Visibility
	Logger  *core.Logger
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Console == nil {
		o.Console = console.New()
	}
	if o.Logger == nil {
		o.Logger = core.NewLogger(os.Stderr, core.LevelDebug)
	}
	return o
}

// Run loads cfg.txt from opts.Dir and prunes the configured folder. Failures
// show the console and wait for a keypress before returning.
func Run(opts Options) (outcome Outcome) {
	opts = opts.withDefaults()
	logger := opts.Logger

	defer func() {
		if r := recover(); r != nil {
			outcome = OutcomeCrash
			showConsole(opts)
			fmt.Fprintf(opts.Stdout, "ERROR: %v\n", r)
			logger.Error("Unexpected error: %v\n%s", r, debug.Stack())
			waitForKey(opts)
		}
	}()

	runID := uuid.NewString()
	logger.Info("Program started (run %s)", runID)

	configPath := filepath.Join(opts.Dir, constants.ConfigFile)
	config, err := core.ParseConfig(opts.Fs, configPath)
	if err != nil {
		reportConfigFailure(opts, configPath, err)
		return OutcomeConfigFailure
	}

	fmt.Fprintf(opts.Stdout, "Configuration loaded:\n")
	fmt.Fprintf(opts.Stdout, "  - Files to keep: %d\n", config.RetainCount)
	fmt.Fprintf(opts.Stdout, "  - Folder path: %s\n", config.TargetPath)
	if config.Pattern != constants.DefaultPattern {
		fmt.Fprintf(opts.Stdout, "  - File pattern: %s\n", config.Pattern)
	}
	fmt.Fprintln(opts.Stdout)
	logger.Info("Configuration loaded: %d files, folder: %s, pattern: %s",
		config.RetainCount, config.TargetPath, config.Pattern)

	pruner := core.NewPruner(opts.Fs, logger, opts.Stdout, config.Pattern)
	if _, err := pruner.Prune(config.TargetPath, config.RetainCount); err != nil {
		fmt.Fprintf(opts.Stdout, "An error occurred: %v\n", err)
		logger.Error("Pruning stopped: %v", err)
	}

	logger.Info("Program finished successfully (run %s)", runID)
	return OutcomeSuccess
}

func reportConfigFailure(opts Options, configPath string, err error) {
	showConsole(opts)

	if errors.Is(err, core.ErrConfigMissing) {
		fmt.Fprintf(opts.Stdout, "Could not find file %s\n", configPath)
		fmt.Fprintf(opts.Stdout, "Program directory: %s\n", opts.Dir)
	} else {
		fmt.Fprintf(opts.Stdout, "Error while loading configuration: %v\n", err)
	}

	const message = "Failed to load configuration."
	fmt.Fprintln(opts.Stdout, message)
	opts.Logger.Error("%s %v", message, err)
	waitForKey(opts)
}

func showConsole(opts Options) {
	if err := opts.Console.Show(); err != nil {
		opts.Logger.Debug("Could not show console: %v", err)
	}
}

func waitForKey(opts Options) {
	if err := console.WaitForKey(opts.Stdin, opts.Stdout); err != nil {
		opts.Logger.Debug("Waiting for keypress failed: %v", err)
	}
}
