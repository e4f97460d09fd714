// Package testutil provides shared test helpers for setting up deck directories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SourceDir creates a temporary directory holding an empty file for each
// name and returns its path.
func SourceDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		WriteDeck(t, dir, n)
	}
	return dir
}

// WriteDeck creates a minimal HTML file called name inside dir.
func WriteDeck(t *testing.T, dir, name string) {
	t.Helper()
	content := []byte("<!DOCTYPE html><title>" + name + "</title>\n")
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		t.Fatal(err)
	}
}
