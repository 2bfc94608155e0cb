// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format selects the record encoding.
type Format string

const (
	// FormatAuto uses text on a terminal and JSON otherwise.
	FormatAuto Format = "auto"
	// FormatText forces slog.TextHandler.
	FormatText Format = "text"
	// FormatJSON forces slog.JSONHandler.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. The empty string is FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown log format %q (want auto, text, or json)", name)
}

// ParseLevel converts a level name (debug, info, warn, error) to a
// slog.Level. The empty string is info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown log level %q: %w", name, err)
	}
	return level, nil
}

// Options configures New.
type Options struct {
	// Level is the minimum severity logged. Nil means info.
	Level slog.Leveler

	// Format selects the encoding. Empty means FormatAuto.
	Format Format

	// Stdout receives records below error severity. Nil means os.Stdout.
	Stdout io.Writer

	// Stderr receives error records. Nil means os.Stderr.
	Stderr io.Writer
}

// New creates a logger that routes records by severity.
func New(options Options) *slog.Logger {
	stdout := options.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := options.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	level := options.Level
	if level == nil {
		level = slog.LevelInfo
	}

	handlerOptions := &slog.HandlerOptions{Level: level}
	return slog.New(&splitHandler{
		standard: newHandler(stdout, options.Format, handlerOptions),
		errors:   newHandler(stderr, options.Format, handlerOptions),
	})
}

func newHandler(writer io.Writer, format Format, options *slog.HandlerOptions) slog.Handler {
	if format == "" || format == FormatAuto {
		format = FormatJSON
		if isTerminal(writer) {
			format = FormatText
		}
	}
	if format == FormatText {
		return slog.NewTextHandler(writer, options)
	}
	return slog.NewJSONHandler(writer, options)
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// splitHandler sends records at slog.LevelError and above to errors and
// the rest to standard.
type splitHandler struct {
	standard slog.Handler
	errors   slog.Handler
}

func (h *splitHandler) target(level slog.Level) slog.Handler {
	if level >= slog.LevelError {
		return h.errors
	}
	return h.standard
}

func (h *splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.target(level).Enabled(ctx, level)
}

func (h *splitHandler) Handle(ctx context.Context, record slog.Record) error {
	return h.target(record.Level).Handle(ctx, record)
}

func (h *splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &splitHandler{
		standard: h.standard.WithAttrs(attrs),
		errors:   h.errors.WithAttrs(attrs),
	}
}

func (h *splitHandler) WithGroup(name string) slog.Handler {
	return &splitHandler{
		standard: h.standard.WithGroup(name),
		errors:   h.errors.WithGroup(name),
	}
}
