// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package launch

import "fmt"

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitInvalidArgs = 1
	ExitBundleError = 2
	ExitExecError   = 3
	ExitSystemError = 4
)

// Error is a launch failure classified by exit code.
type Error struct {
	// Code is the process exit code for this failure.
	Code int

	// State is the last state the run reached before failing.
	State State

	// Err is the underlying failure.
	Err error
}

func (e *Error) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error so errors.Is can match the
// bundle and environment sentinels through an *Error.
func (e *Error) Unwrap() error { return e.Err }

// ExitCode returns the process exit code for the failure.
func (e *Error) ExitCode() int { return e.Code }

// InvalidArguments returns an *Error with ExitInvalidArgs.
func InvalidArguments(format string, args ...any) *Error {
	return &Error{Code: ExitInvalidArgs, State: StateStart, Err: fmt.Errorf(format, args...)}
}
