// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package handoff

import (
	"fmt"
	"log/slog"
	"os"
)

// ExecFunc has the signature of syscall.Exec and unix.Exec.
type ExecFunc func(path string, argv []string, env []string) error

// execFunc is the exec primitive used by Exec. Defaults to the
// platform implementation; tests replace it with SetExecFunc.
var execFunc ExecFunc = platformExec

// SetExecFunc replaces the exec primitive and returns a function that
// restores the previous one.
func SetExecFunc(fn ExecFunc) (restore func()) {
	previous := execFunc
	execFunc = fn
	return func() { execFunc = previous }
}

// Exec replaces the current process with the executable at path,
// passing argv = [path] and env. It only returns on failure.
func Exec(path string, env []string, logger *slog.Logger) error {
	logger.Info("launching application", "executable", path)
	if workingDirectory, err := os.Getwd(); err == nil {
		logger.Debug("working directory", "path", workingDirectory)
	}

	argv := []string{path}
	err := execFunc(path, argv, env)
	if err == nil {
		// An exec primitive that returns nil did not replace the
		// process. Treat it as a failure.
		err = fmt.Errorf("exec of %s returned without replacing the process", path)
	}
	return err
}

// ChildExitError reports the exit status of a child started in place of
// exec on platforms that lack it.
type ChildExitError struct {
	Path string
	Code int
}

func (e *ChildExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Path, e.Code)
}

// ExitCode returns the child's exit status.
func (e *ChildExitError) ExitCode() int {
	return e.Code
}
