package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/starford/pptgallery/internal/apperr"
	"github.com/starford/pptgallery/internal/checksum"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the source directory
}

// NewFS returns an FS rooted at dir, creating the directory when it does
// not exist yet. created reports whether the directory had to be made.
func NewFS(dir string) (store *FS, created bool, err error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, false, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return nil, false, fmt.Errorf("storage: create root: %w", err)
		}
		created = true
	case err != nil:
		return nil, false, fmt.Errorf("storage: stat root: %w", err)
	case !info.IsDir():
		return nil, false, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, created, nil
}

// Root returns the absolute source directory.
func (f *FS) Root() string { return f.root }

// List returns every non-directory entry of the root ending with ext.
// Symlinks are resolved: links to regular files are kept, links to
// directories and dangling links are dropped.
func (f *FS) List(ext string) ([]string, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: list: %w", err)
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ext) {
			continue
		}
		if !f.isFile(e) {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (f *FS) isFile(e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return !e.IsDir()
	}
	info, err := os.Stat(filepath.Join(f.root, e.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// WriteFile atomically replaces path with content: tmp file → fsync → rename.
// When the file already holds identical bytes nothing is written and
// written is false. Every failure wraps apperr.ErrOutputWrite.
func WriteFile(path string, content []byte) (written bool, err error) {
	if existing, readErr := os.ReadFile(path); readErr == nil {
		if checksum.Sum(existing) == checksum.Sum(content) {
			return false, nil
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("%w: mkdir %s: %w", apperr.ErrOutputWrite, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".gallery-tmp-*")
	if err != nil {
		return false, fmt.Errorf("%w: create temp: %w", apperr.ErrOutputWrite, err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return false, fmt.Errorf("%w: write temp: %w", apperr.ErrOutputWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		return false, fmt.Errorf("%w: fsync: %w", apperr.ErrOutputWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("%w: close temp: %w", apperr.ErrOutputWrite, err)
	}
	// CreateTemp uses 0600; the gallery is meant to be served.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return false, fmt.Errorf("%w: chmod: %w", apperr.ErrOutputWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return false, fmt.Errorf("%w: rename: %w", apperr.ErrOutputWrite, err)
	}
	success = true
	return true, nil
}
