// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package environment abstracts the process environment for the
// launcher's library search-path handling.
//
// [Environment] is the small read/write surface the launcher needs:
// lookup, mutation, and a snapshot for exec. [Process] is backed by the
// real process environment; [Map] is an in-memory implementation for
// tests and dry runs.
//
// [PrependPath] builds a colon-separated search-path value with a new
// entry in front of any existing value, enforcing [MaxValueLength].
// [LibraryPathVariable] names the platform's dynamic linker search-path
// variable.
package environment
