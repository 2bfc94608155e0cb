// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package handoff replaces the running launcher with a bundle's
// executable.
//
// On unix [Exec] calls execve(2) via golang.org/x/sys/unix: argv is the
// executable path alone and the environment is whatever the caller
// passes, normally a snapshot of the (already mutated) process
// environment. On success it does not return.
//
// On platforms without an exec primitive, [Exec] starts the executable
// as a child with the same argv and environment, waits, and returns a
// [ChildExitError] carrying the child's exit status (zero included) so
// the caller can exit with it. The launcher's own process identity is
// not replaced there.
//
// Tests substitute the exec primitive with [SetExecFunc].
package handoff
