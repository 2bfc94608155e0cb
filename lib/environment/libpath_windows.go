// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package environment

// LibraryPathVariable is PATH on Windows, where the loader searches
// the executable path for shared libraries.
const LibraryPathVariable = "PATH"
