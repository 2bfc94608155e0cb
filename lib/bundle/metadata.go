// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Metadata is the decoded contents of info.yaml. Only the fields the
// launcher logs are typed; everything else is kept in Extra.
type Metadata struct {
	// Name is the human-readable application name.
	Name string `yaml:"name"`

	// Version is the application version string.
	Version string `yaml:"version"`

	// Description is a short summary of the application.
	Description string `yaml:"description"`

	// Extra holds any other top-level keys.
	Extra map[string]any `yaml:",inline"`
}

// LoadMetadata reads and decodes the metadata file at path. An empty
// file decodes to a zero Metadata.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}

	var metadata Metadata
	if err := yaml.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("parsing metadata %s: %w", path, err)
	}
	return &metadata, nil
}
