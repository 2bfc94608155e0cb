// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for bundle-launch.
//
// Three package-level variables are injected at build time via
// -ldflags -X, for example:
//
//	go build -ldflags "\
//	  -X github.com/bureau-foundation/bundle-launch/lib/version.GitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/bureau-foundation/bundle-launch/lib/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	  ./cmd/bundle-launch
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//
// [Version] is set manually for releases.
//
// Formatting functions produce human-readable version strings:
//
//   - [Info] -- "1.0.0 (abc1234, 2026-02-10T...)" for --version
//   - [Full] -- Info plus Go version and GOOS/GOARCH
//   - [Short] -- just the version number
//   - [Fprint] -- writes "<binary> <Info>" to a writer
package version
