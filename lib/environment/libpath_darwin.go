// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package environment

// LibraryPathVariable is the environment variable dyld consults for
// shared library directories.
const LibraryPathVariable = "DYLD_LIBRARY_PATH"
