// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	// ErrBundleNotFound means the bundle root is missing or is not a
	// directory.
	ErrBundleNotFound = errors.New("bundle directory not found")

	// ErrExecutableNotFound means exec/base is missing or is not a
	// regular file (after following symlinks).
	ErrExecutableNotFound = errors.New("required executable not found")

	// ErrNotExecutable means exec/base exists but the effective
	// credentials of this process cannot execute it.
	ErrNotExecutable = errors.New("executable lacks execute permission")
)

// Validate checks that the bundle root is a directory, that exec/base
// is a regular file or a symlink to one, and that it is executable.
// Checks run in that order and the first failure is logged and
// returned, wrapping one of the package's sentinel errors.
func Validate(b *Bundle, logger *slog.Logger) error {
	if !directoryExists(b.Root()) {
		logger.Error("bundle directory not found", "path", b.Root())
		return fmt.Errorf("%w: %s", ErrBundleNotFound, b.Root())
	}

	executable := b.Executable()
	info, err := os.Stat(executable)
	if err != nil {
		logger.Error("required executable not found", "path", executable, "error", err)
		return fmt.Errorf("%w: %s", ErrExecutableNotFound, executable)
	}
	if !info.Mode().IsRegular() {
		logger.Error("required executable is not a regular file",
			"path", executable,
			"mode", info.Mode().String(),
		)
		return fmt.Errorf("%w: %s is not a regular file", ErrExecutableNotFound, executable)
	}

	if err := checkExecutable(executable, info); err != nil {
		logger.Error("executable lacks execute permissions",
			"path", executable,
			"mode", info.Mode().Perm().String(),
			"error", err,
		)
		return fmt.Errorf("%w: %s: %v", ErrNotExecutable, executable, err)
	}

	logger.Info("bundle validation successful", "bundle", b.Root())
	return nil
}
