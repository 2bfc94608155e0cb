// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import "log/slog"

// Inspection records which optional components a bundle carries.
type Inspection struct {
	HasMetadata  bool
	HasIcon      bool
	HasResources bool

	// Metadata is the decoded info.yaml, or nil when the file is absent
	// or could not be decoded.
	Metadata *Metadata
}

// Inspect logs the presence or absence of the optional bundle
// components. Present components are logged at info, absent ones at
// debug. It never fails: an unreadable info.yaml is a warning.
func Inspect(b *Bundle, logger *slog.Logger) Inspection {
	var result Inspection

	metadataPath := b.MetadataFile()
	if fileExists(metadataPath) {
		result.HasMetadata = true
		logger.Info("metadata file found", "path", metadataPath)

		metadata, err := LoadMetadata(metadataPath)
		if err != nil {
			logger.Warn("ignoring unreadable metadata file", "path", metadataPath, "error", err)
		} else {
			result.Metadata = metadata
			if metadata.Name != "" || metadata.Version != "" {
				logger.Info("bundle metadata",
					"name", metadata.Name,
					"version", metadata.Version,
				)
			}
		}
	} else {
		logger.Debug("metadata file not present")
	}

	iconPath := b.IconFile()
	if fileExists(iconPath) {
		result.HasIcon = true
		logger.Info("icon file found", "path", iconPath)
	} else {
		logger.Debug("icon file not present")
	}

	resourcesPath := b.ResourcesDir()
	if directoryExists(resourcesPath) {
		result.HasResources = true
		logger.Info("resources directory found", "path", resourcesPath)
	} else {
		logger.Debug("resources directory not present")
	}

	return result
}
