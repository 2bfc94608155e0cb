// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for bundle-launch
// packages.
//
// [NewBundle] lays out an application bundle under t.TempDir() from a
// [BundleSpec], so validator, configurator, inspector, and end-to-end
// tests share one description of what a bundle on disk looks like.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no bundle-launch internal dependencies.
package testutil
