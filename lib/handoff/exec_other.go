// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package handoff

import (
	"errors"
	"os"
	"os/exec"
)

// platformExec runs path as a child with the given argv and env and
// waits for it. Standard streams are inherited. The child's exit
// status comes back as a *ChildExitError; a start failure is returned
// as-is.
func platformExec(path string, argv []string, env []string) error {
	command := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    env,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if err := command.Start(); err != nil {
		return err
	}

	err := command.Wait()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return err
	}
	return &ChildExitError{Path: path, Code: command.ProcessState.ExitCode()}
}
