// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and any $VAR or ${VAR} references in path
// and returns the absolute form. It returns an error if path is empty.
func ExpandPath(path string) (string, error) {

	if path == "" {
		return "", os.ErrInvalid
	}

	// First, expand environment variable references.
	path = os.ExpandEnv(path)

	// A leading ~ refers to the current user's home directory.
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	// Now determine if the path is absolute or relative. If it is relative,
	// make it absolute.
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = filepath.Join(cwd, path)
	}

	return path, nil
}

// ExpandExistingFile expands path like ExpandPath and then requires the fs
// entry to exist and be a regular file. It returns an error if the entry does
// not exist or is a directory.
func ExpandExistingFile(path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}

	if fi, err := os.Stat(expanded); err != nil {
		return "", err
	} else if fi.IsDir() {
		return "", os.ErrInvalid
	}

	return expanded, nil
}
