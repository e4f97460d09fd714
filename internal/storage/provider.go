// Package storage defines the file-system access used by the gallery build.
package storage

// Provider lists deck files in the source directory.
type Provider interface {
	// Root returns the absolute path of the source directory.
	Root() string
	// List returns the names of entries in the root whose name ends with
	// ext, sorted by name. Subdirectories are not descended into.
	List(ext string) ([]string, error)
}
