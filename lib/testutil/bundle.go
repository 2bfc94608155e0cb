// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// BundleSpec describes which parts of a bundle to create.
type BundleSpec struct {
	// NoExecutable skips creating exec/base.
	NoExecutable bool

	// ExecutableMode is the permission mode of exec/base. Zero means
	// 0755.
	ExecutableMode os.FileMode

	// ExecutableContent is written to exec/base. Empty means a minimal
	// shell script.
	ExecutableContent string

	// SymlinkExecutable makes exec/base a symlink to a sibling file
	// that carries ExecutableMode and ExecutableContent.
	SymlinkExecutable bool

	// Library creates the library/ directory.
	Library bool

	// Resources creates the resources/ directory.
	Resources bool

	// Icon creates icon.png.
	Icon bool

	// Metadata, when non-empty, is written to info.yaml.
	Metadata string
}

// NewBundle creates a bundle under a fresh temporary directory and
// returns its root path.
func NewBundle(t *testing.T, spec BundleSpec) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "app")
	mkdir(t, root)

	if !spec.NoExecutable {
		mkdir(t, filepath.Join(root, "exec"))

		mode := spec.ExecutableMode
		if mode == 0 {
			mode = 0755
		}
		content := spec.ExecutableContent
		if content == "" {
			content = "#!/bin/sh\nexit 0\n"
		}

		target := filepath.Join(root, "exec", "base")
		if spec.SymlinkExecutable {
			realPath := filepath.Join(root, "exec", "base.real")
			writeFile(t, realPath, content, mode)
			if err := os.Symlink("base.real", target); err != nil {
				t.Fatalf("symlinking %s: %v", target, err)
			}
		} else {
			writeFile(t, target, content, mode)
		}
	}

	if spec.Library {
		mkdir(t, filepath.Join(root, "library"))
	}
	if spec.Resources {
		mkdir(t, filepath.Join(root, "resources"))
	}
	if spec.Icon {
		// PNG signature only; nothing decodes it.
		writeFile(t, filepath.Join(root, "icon.png"), "\x89PNG\r\n\x1a\n", 0644)
	}
	if spec.Metadata != "" {
		writeFile(t, filepath.Join(root, "info.yaml"), spec.Metadata, 0644)
	}

	return root
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
}

// writeFile writes content and then chmods, so the requested mode is
// not filtered by the process umask.
func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
}
