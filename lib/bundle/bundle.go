// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout of a bundle, relative to its root.
const (
	LayoutExecutable = "exec/base"
	LayoutLibrary    = "library"
	LayoutResources  = "resources"
	LayoutMetadata   = "info.yaml"
	LayoutIcon       = "icon.png"
)

// Bundle is an application bundle rooted at a directory. It holds no
// state beyond the root path.
type Bundle struct {
	root string
}

// New returns the bundle rooted at path. Relative paths are resolved
// against the working directory so every derived path (including the
// library entry exported to the launched program) is absolute. New does
// not touch the filesystem.
//
// An empty path names no directory, so it fails with ErrBundleNotFound
// rather than resolving to the working directory.
func New(path string) (*Bundle, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrBundleNotFound)
	}
	absolute, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving bundle path %q: %w", path, err)
	}
	return &Bundle{root: absolute}, nil
}

// Root returns the absolute bundle root.
func (b *Bundle) Root() string { return b.root }

// Executable returns the path of the required executable.
func (b *Bundle) Executable() string { return b.path(LayoutExecutable) }

// LibraryDir returns the path of the optional shared library directory.
func (b *Bundle) LibraryDir() string { return b.path(LayoutLibrary) }

// ResourcesDir returns the path of the optional resources directory.
func (b *Bundle) ResourcesDir() string { return b.path(LayoutResources) }

// MetadataFile returns the path of the optional metadata file.
func (b *Bundle) MetadataFile() string { return b.path(LayoutMetadata) }

// IconFile returns the path of the optional icon.
func (b *Bundle) IconFile() string { return b.path(LayoutIcon) }

func (b *Bundle) path(relative string) string {
	return filepath.Join(b.root, filepath.FromSlash(relative))
}

// fileExists reports whether path resolves (following symlinks) to a
// regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// directoryExists reports whether path resolves to a directory.
func directoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
