// Package models defines the domain types for the gallery builder.
package models

// Deck is a single slide-deck file found in the source directory.
//
// Filename is the on-disk name and is never rewritten; link targets are
// derived from it by percent-encoding.
type Deck struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
}

// Summary describes the outcome of one build.
type Summary struct {
	Total      int      `json:"total"`
	Skipped    int      `json:"skipped"`
	Categories []string `json:"categories"`
	Output     string   `json:"output"`
	Written    bool     `json:"written"`
	Checksum   string   `json:"checksum"`
}
