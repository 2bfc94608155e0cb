// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package handoff

import "golang.org/x/sys/unix"

func platformExec(path string, argv []string, env []string) error {
	return unix.Exec(path, argv, env)
}
