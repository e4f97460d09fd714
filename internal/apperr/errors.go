// Package apperr holds the sentinel errors shared across the build pipeline.
package apperr

import "errors"

var (
	// ErrOutputWrite marks the only fatal pipeline failure: the gallery
	// document could not be written.
	ErrOutputWrite   = errors.New("write output")
	ErrInvalidConfig = errors.New("invalid config")
)
