// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package launch drives a bundle through validation, environment
// preparation, inspection, and process handoff.
//
// [Launcher.Run] is a strictly linear state machine:
//
//	Start → ArgsOK → Validated → EnvConfigured → HandedOff
//
// Any step may instead end in Failed. Failures are returned as [*Error],
// which carries the state the run reached and the process exit code for
// the failure class ([ExitInvalidArgs], [ExitBundleError],
// [ExitExecError], [ExitSystemError]). The error satisfies
// interface{ ExitCode() int } so main can hand it to process.Exit.
//
// On unix a successful run never returns: the launcher has become the
// bundle's executable. With DryRun set, Run stops before handoff and
// returns nil.
package launch
