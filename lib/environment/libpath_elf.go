// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !darwin && !windows

package environment

// LibraryPathVariable is the environment variable the dynamic linker
// consults for shared library directories.
const LibraryPathVariable = "LD_LIBRARY_PATH"
