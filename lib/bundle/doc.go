// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bundle models an application bundle on disk and implements
// the read-only checks the launcher runs before handing off to it.
//
// A bundle is a directory with a fixed layout:
//
//	<root>/
//	├── exec/base     required executable
//	├── library/      optional shared libraries
//	├── resources/    optional resource files
//	├── info.yaml     optional metadata
//	└── icon.png      optional icon
//
// [Validate] confirms the root directory and the executable exist and
// that the executable can be run with the caller's effective
// credentials. Each failure is reported as a distinct sentinel error
// ([ErrBundleNotFound], [ErrExecutableNotFound], [ErrNotExecutable]).
//
// [ConfigureLibraryPath] prepends library/ to the dynamic linker search
// path when the directory exists. A bundle without library/ is valid.
//
// [Inspect] reports the optional components. It only logs; nothing it
// finds changes what the launcher does next. When info.yaml is present
// it is decoded into [Metadata] for the log line.
//
// Nothing in this package writes to the bundle.
package bundle
