// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package bundle

import (
	"errors"
	"os"
)

// checkExecutable falls back to the permission bits where there is no
// access(2).
func checkExecutable(_ string, info os.FileInfo) error {
	if info.Mode().Perm()&0111 == 0 {
		return errors.New("no execute bits set")
	}
	return nil
}
