// Package filex holds small filesystem helpers for locating and preparing
// the clipboard storage directory.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName is the directory name used under the user's data directory.
const AppName = "clipdir"

// EnsureDir creates dir and any missing parents. It is idempotent and fails
// if a non-directory already exists at dir.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// DataDir returns $XDG_DATA_HOME/clipdir, falling back to
// ~/.local/share/clipdir when XDG_DATA_HOME is unset.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}

	return filepath.Join(home, ".local", "share", AppName), nil
}
