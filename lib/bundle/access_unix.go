// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package bundle

import (
	"os"

	"golang.org/x/sys/unix"
)

// checkExecutable asks the kernel whether the effective uid/gid may
// execute path, which takes ownership and ACLs into account where the
// mode bits alone would not.
func checkExecutable(path string, _ os.FileInfo) error {
	return unix.Faccessat(unix.AT_FDCWD, path, unix.X_OK, unix.AT_EACCESS)
}
