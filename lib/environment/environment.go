// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package environment

import (
	"os"
	"sort"
	"strings"
)

// Environment is the subset of process environment operations used by
// the launcher.
type Environment interface {
	// LookupEnv returns the value of key and whether it is set.
	LookupEnv(key string) (string, bool)

	// Setenv sets key to value.
	Setenv(key, value string) error

	// Environ returns a snapshot in "KEY=VALUE" form, suitable for
	// passing to exec.
	Environ() []string
}

// Process returns an Environment backed by the real process environment.
func Process() Environment {
	return processEnvironment{}
}

type processEnvironment struct{}

func (processEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (processEnvironment) Setenv(key, value string) error      { return os.Setenv(key, value) }
func (processEnvironment) Environ() []string                   { return os.Environ() }

// Map is an in-memory Environment. The zero value is empty and ready
// to use.
type Map struct {
	values map[string]string

	// SetErr, when non-nil, is returned by every Setenv call without
	// modifying the map. Tests use it to simulate mutation failures.
	SetErr error
}

// NewMap returns a Map seeded from "KEY=VALUE" entries. Entries without
// an equals sign are ignored.
func NewMap(entries ...string) *Map {
	m := &Map{values: make(map[string]string, len(entries))}
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if found {
			m.values[key] = value
		}
	}
	return m
}

// LookupEnv implements Environment.
func (m *Map) LookupEnv(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Setenv implements Environment.
func (m *Map) Setenv(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// Environ implements Environment. Entries are sorted by key so that
// snapshots are deterministic.
func (m *Map) Environ() []string {
	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(keys))
	for _, key := range keys {
		result = append(result, key+"="+m.values[key])
	}
	return result
}
