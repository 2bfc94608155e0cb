// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging builds the launcher's structured logger.
//
// Records at error severity and above are written to stderr; everything
// else goes to stdout. Each stream independently picks slog's text
// handler when it is a terminal and the JSON handler otherwise, unless
// a [Format] is forced. Every record carries a timestamp and level.
package logging
