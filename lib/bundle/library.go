// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/bundle-launch/lib/environment"
)

// LibraryPathOptions controls how ConfigureLibraryPath writes the
// search-path variable.
type LibraryPathOptions struct {
	// Variable is the environment variable to update. Empty means
	// environment.LibraryPathVariable.
	Variable string

	// MaxLength is the maximum value length including the terminator.
	// Zero means environment.MaxValueLength.
	MaxLength int
}

// ConfigureLibraryPath prepends the bundle's library directory to the
// library search-path variable in env. It must run before handoff: the
// launched program sees the environment as it is at exec time.
//
// A bundle without a library directory is not an error; the variable
// is left untouched and configured is false. Errors are returned when
// the new value would be too long (wrapping environment.ErrTooLong) or
// when env refuses the mutation.
func ConfigureLibraryPath(b *Bundle, env environment.Environment, options LibraryPathOptions, logger *slog.Logger) (configured bool, err error) {
	variable := options.Variable
	if variable == "" {
		variable = environment.LibraryPathVariable
	}

	libraryDir := b.LibraryDir()
	if !directoryExists(libraryDir) {
		logger.Warn("library directory not found", "path", libraryDir)
		return false, nil
	}

	current, _ := env.LookupEnv(variable)
	value, err := environment.PrependPath(libraryDir, current, options.MaxLength)
	if err != nil {
		logger.Error("library search path would exceed maximum length",
			"variable", variable,
			"error", err,
		)
		return false, fmt.Errorf("building %s: %w", variable, err)
	}

	if err := env.Setenv(variable, value); err != nil {
		logger.Error("failed to set library search path", "variable", variable, "error", err)
		return false, fmt.Errorf("setting %s: %w", variable, err)
	}

	logger.Info("library path configured", "path", libraryDir)
	logger.Debug("full library search path", "variable", variable, "value", value)
	return true, nil
}
