// Package testhelpers provides common utilities for tests across packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// ConfigDir creates a temporary directory with the .ringtail structure.
// Returns the temp dir root and the config dir path.
// The temp dir is automatically cleaned up when the test completes.
func ConfigDir(t *testing.T) (tempDir, configDir string) {
	t.Helper()
	tempDir = t.TempDir()
	configDir = filepath.Join(tempDir, ".ringtail")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	return tempDir, configDir
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WorkingDir creates a temporary directory suitable for use as a working directory.
// Returns the temp dir path.
// The temp dir is automatically cleaned up when the test completes.
func WorkingDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}
