// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package launch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/bundle-launch/lib/bundle"
	"github.com/bureau-foundation/bundle-launch/lib/environment"
	"github.com/bureau-foundation/bundle-launch/lib/handoff"
)

// MaxBundlePathLength is the platform path limit (PATH_MAX, including
// the terminator). Bundle paths this long or longer are rejected as
// invalid arguments.
const MaxBundlePathLength = 4096

// ErrArgumentCount is wrapped by the error Run returns when it is not
// given exactly one positional argument. Callers print usage for it.
var ErrArgumentCount = errors.New("expected exactly one bundle path argument")

// Config holds the dependencies and options for a Launcher.
type Config struct {
	// Environment is read and mutated for the library search path and
	// snapshotted for exec. Nil means the real process environment.
	Environment environment.Environment

	// LibraryPath controls the library search-path update.
	LibraryPath bundle.LibraryPathOptions

	// DryRun stops before handoff and makes Run return nil.
	DryRun bool

	// Logger receives every step. Required.
	Logger *slog.Logger
}

// Launcher runs the launch sequence once.
type Launcher struct {
	environment environment.Environment
	libraryPath bundle.LibraryPathOptions
	dryRun      bool
	logger      *slog.Logger

	state State
}

// New creates a Launcher in StateStart.
func New(config Config) *Launcher {
	env := config.Environment
	if env == nil {
		env = environment.Process()
	}
	return &Launcher{
		environment: env,
		libraryPath: config.LibraryPath,
		dryRun:      config.DryRun,
		logger:      config.Logger,
		state:       StateStart,
	}
}

// State returns the state the launcher has reached.
func (l *Launcher) State() State {
	return l.state
}

// Run takes the positional command-line arguments and executes the
// launch sequence. On unix a successful, non-dry run does not return.
//
// Returned errors are *Error, except for a *handoff.ChildExitError on
// platforms where the executable runs as a child.
func (l *Launcher) Run(args []string) error {
	bundlePath, err := l.checkArguments(args)
	if err != nil {
		return err
	}
	l.advance(StateArgsOK)
	l.logger.Info("target bundle", "path", bundlePath)

	target, err := bundle.New(bundlePath)
	if errors.Is(err, bundle.ErrBundleNotFound) {
		l.logger.Error("bundle directory not found", "path", bundlePath)
		return l.fail(ExitBundleError, err)
	}
	if err != nil {
		l.logger.Error("cannot resolve bundle path", "path", bundlePath, "error", err)
		return l.fail(ExitSystemError, err)
	}

	if err := bundle.Validate(target, l.logger); err != nil {
		return l.fail(ExitBundleError, err)
	}
	l.advance(StateValidated)

	if _, err := bundle.ConfigureLibraryPath(target, l.environment, l.libraryPath, l.logger); err != nil {
		return l.fail(ExitSystemError, err)
	}
	l.advance(StateEnvConfigured)

	bundle.Inspect(target, l.logger)

	if l.dryRun {
		l.logger.Info("dry run, not launching", "executable", target.Executable())
		return nil
	}

	// The environment snapshot is taken here, after the library path
	// update, so the launched program inherits it.
	execErr := handoff.Exec(target.Executable(), l.environment.Environ(), l.logger)

	var childExit *handoff.ChildExitError
	if errors.As(execErr, &childExit) {
		l.advance(StateHandedOff)
		return childExit
	}

	l.logger.Error("failed to execute application",
		"executable", target.Executable(),
		"error", execErr,
	)
	return l.fail(ExitExecError, fmt.Errorf("executing %s: %w", target.Executable(), execErr))
}

func (l *Launcher) checkArguments(args []string) (string, error) {
	switch {
	case len(args) == 0:
		l.logger.Error("missing required bundle path argument")
		return "", l.fail(ExitInvalidArgs, fmt.Errorf("%w: none given", ErrArgumentCount))
	case len(args) > 1:
		l.logger.Error("too many arguments provided", "count", len(args))
		return "", l.fail(ExitInvalidArgs, fmt.Errorf("%w: %d given", ErrArgumentCount, len(args)))
	}

	bundlePath := args[0]
	if len(bundlePath) >= MaxBundlePathLength {
		l.logger.Error("bundle path too long", "length", len(bundlePath), "max", MaxBundlePathLength-1)
		return "", l.fail(ExitInvalidArgs, fmt.Errorf("bundle path too long (max %d characters)", MaxBundlePathLength-1))
	}
	return bundlePath, nil
}

func (l *Launcher) advance(next State) {
	l.logger.Debug("launch state", "from", l.state.String(), "to", next.String())
	l.state = next
}

// fail records the failure and wraps err with the state reached.
func (l *Launcher) fail(code int, err error) *Error {
	reached := l.state
	l.advance(StateFailed)
	return &Error{Code: code, State: reached, Err: err}
}
