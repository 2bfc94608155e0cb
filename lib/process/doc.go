// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides the binary entrypoint exit helper.
//
// [ExitCode] maps an error returned from run() to a process exit code:
// nil is 0, an error implementing interface{ ExitCode() int } supplies
// its own code, and anything else is 1. [Exit] applies that mapping and
// terminates. The error has already been logged by the time it reaches
// main, so Exit prints nothing.
package process
