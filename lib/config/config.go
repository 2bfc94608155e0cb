// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config is the launcher configuration.
type Config struct {
	// Log configures diagnostic output.
	Log LogConfig `yaml:"log"`

	// Launch configures the launch sequence.
	Launch LaunchConfig `yaml:"launch"`
}

// LogConfig configures diagnostic output.
type LogConfig struct {
	// Level is the minimum severity: debug, info, warn, or error.
	// Default: info
	Level string `yaml:"level"`

	// Format is the record encoding: auto, text, or json. Auto picks
	// text when the stream is a terminal.
	// Default: auto
	Format string `yaml:"format"`
}

// LaunchConfig configures the launch sequence.
type LaunchConfig struct {
	// LibraryVariable overrides the library search-path variable name.
	// Default: empty (the platform convention, e.g. LD_LIBRARY_PATH)
	LibraryVariable string `yaml:"library_variable"`

	// MaxEnvironmentLength caps the library search-path value,
	// including the terminator.
	// Default: 4096
	MaxEnvironmentLength int `yaml:"max_environment_length"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
		Launch: LaunchConfig{
			LibraryVariable:      "",
			MaxEnvironmentLength: 4096,
		},
	}
}

// LoadFile loads configuration from path on top of Default and
// validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile decodes a single file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if isJSONC(path) {
		data = jsonc.ToJSON(data)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func isJSONC(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return true
	}
	return false
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	levels := []string{"debug", "info", "warn", "error"}
	if !contains(levels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", levels))
	}

	formats := []string{"auto", "text", "json"}
	if !contains(formats, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", formats))
	}

	if strings.ContainsAny(c.Launch.LibraryVariable, "=\x00") {
		errs = append(errs, fmt.Errorf("launch.library_variable %q is not a valid variable name", c.Launch.LibraryVariable))
	}

	if c.Launch.MaxEnvironmentLength <= 0 {
		errs = append(errs, fmt.Errorf("launch.max_environment_length must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
