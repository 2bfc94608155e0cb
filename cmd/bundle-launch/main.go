// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bundle-launch/lib/bundle"
	"github.com/bureau-foundation/bundle-launch/lib/config"
	"github.com/bureau-foundation/bundle-launch/lib/launch"
	"github.com/bureau-foundation/bundle-launch/lib/logging"
	"github.com/bureau-foundation/bundle-launch/lib/process"
	"github.com/bureau-foundation/bundle-launch/lib/version"
)

const binaryName = "bundle-launch"

func main() {
	process.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		configPath  string
		debug       bool
		logFormat   string
		dryRun      bool
		showHelp    bool
		showVersion bool
	)

	flagSet := pflag.NewFlagSet(binaryName, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "launcher config file (YAML, or JSONC for .json/.jsonc)")
	flagSet.BoolVar(&debug, "debug", false, "enable debug logging")
	flagSet.StringVar(&logFormat, "log-format", "auto", "log encoding: auto, text, or json")
	flagSet.BoolVar(&dryRun, "dry-run", false, "validate and prepare the bundle without launching it")
	flagSet.BoolVarP(&showHelp, "help", "h", false, "show help")
	flagSet.BoolVar(&showVersion, "version", false, "show version")

	if err := flagSet.Parse(args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n\n", binaryName, err)
		printUsage(stderr, flagSet)
		return launch.InvalidArguments("%v", err)
	}
	if showHelp {
		printUsage(stdout, flagSet)
		return nil
	}
	if showVersion {
		version.Fprint(stdout, binaryName)
		return nil
	}

	positional := flagSet.Args()

	// Argument count errors are reported before any file is read, so a
	// --config file is only loaded for a well-formed invocation.
	cfg := config.Default()
	if configPath != "" && len(positional) == 1 {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", binaryName, err)
			return launch.InvalidArguments("%w", err)
		}
		cfg = loaded
	}

	logger, err := newLogger(cfg, flagSet, debug, logFormat, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", binaryName, err)
		return launch.InvalidArguments("%w", err)
	}

	if len(positional) == 1 {
		logger.Info("starting application launcher", "version", version.Short())
	}

	launcher := launch.New(launch.Config{
		LibraryPath: bundle.LibraryPathOptions{
			Variable:  cfg.Launch.LibraryVariable,
			MaxLength: cfg.Launch.MaxEnvironmentLength,
		},
		DryRun: dryRun,
		Logger: logger,
	})

	err = launcher.Run(positional)
	if err != nil && launcher.State() == launch.StateFailed {
		if errors.Is(err, launch.ErrArgumentCount) {
			printUsage(stderr, flagSet)
		}
		logger.Error("application launcher terminated unexpectedly", "exit_code", process.ExitCode(err))
	}
	return err
}

// newLogger builds the logger from config, with --debug and an explicit
// --log-format taking precedence.
func newLogger(cfg *config.Config, flagSet *pflag.FlagSet, debug bool, logFormat string, stdout, stderr io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if debug {
		level = slog.LevelDebug
	}

	formatName := cfg.Log.Format
	if flagSet.Changed("log-format") {
		formatName = logFormat
	}
	format, err := logging.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	return logging.New(logging.Options{
		Level:  level,
		Format: format,
		Stdout: stdout,
		Stderr: stderr,
	}), nil
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `%s %s - launch an application bundle

USAGE
    %s [flags] <bundle_path>

ARGUMENTS
    bundle_path    Path to the application bundle directory

BUNDLE LAYOUT
    bundle_path/
    ├── exec/base          required executable
    ├── library/           optional shared libraries
    ├── resources/         optional resource files
    ├── info.yaml          optional metadata
    └── icon.png           optional application icon

FLAGS
%s
EXIT CODES
    0  success
    1  invalid arguments
    2  bundle validation error
    3  application execution error
    4  system error
`, binaryName, version.Short(), binaryName, flagSet.FlagUsages())
}
