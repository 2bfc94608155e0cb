// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// bundle-launch validates an application bundle and replaces itself
// with the bundle's executable.
//
// Usage:
//
//	bundle-launch [--config file] [--debug] [--log-format auto|text|json] [--dry-run] <bundle_path>
//
// The bundle's exec/base must exist and be executable. When library/
// exists it is prepended to LD_LIBRARY_PATH (DYLD_LIBRARY_PATH on
// darwin) before exec. exec/base is started with no arguments and the
// launcher's environment.
//
// Exit codes: 0 success, 1 invalid arguments, 2 bundle error, 3 exec
// error, 4 system error. A successful launch never exits: the process
// becomes the bundle's program.
package main
