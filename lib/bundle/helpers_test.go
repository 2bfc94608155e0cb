// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"bytes"
	"log/slog"
)

// testLogger returns a debug-level logger writing to a buffer so tests
// can assert on what was logged.
func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buffer
}
