// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for bundle-launch.
//
// Configuration comes from a single file named by the --config flag.
// There is no discovery and no environment variable override: the
// launcher reads no environment state beyond the library search path,
// so a run without --config uses [Default] unchanged.
//
// Files ending in .json or .jsonc are treated as JSON with comments and
// trailing commas (normalized with github.com/tidwall/jsonc). Anything
// else is YAML. Unknown keys are rejected in both cases.
//
// Key exports:
//
//   - [Config] -- Log and Launch sections
//   - [Default] -- the configuration used when no file is given
//   - [LoadFile] -- read, decode, and validate a file
//
// This package depends on no other bundle-launch packages.
package config
