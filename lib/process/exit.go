// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"os"
)

// exitFunc terminates the process. Tests replace it.
var exitFunc = os.Exit

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// Exit terminates the process with ExitCode(err).
func Exit(err error) {
	exitFunc(ExitCode(err))
}
