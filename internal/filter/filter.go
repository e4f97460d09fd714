// Package filter models the gallery page's client-side search and category
// filter. The embedded page script applies the same rules; this package
// keeps them testable without a browser.
package filter

import "strings"

// All is the category value that matches every item.
const All = "all"

// Item is the filterable view of one gallery entry.
type Item struct {
	Category string
	Title    string
}

// State is the complete filter state of the page.
type State struct {
	ActiveCategory string
	SearchText     string
}

// Initial is the state a freshly loaded page starts in.
func Initial() State {
	return State{ActiveCategory: All}
}

// SelectCategory returns s with category as the single active category.
func (s State) SelectCategory(category string) State {
	s.ActiveCategory = category
	return s
}

// SetSearch returns s with the search box text replaced.
func (s State) SetSearch(text string) State {
	s.SearchText = text
	return s
}

// Matches reports whether it is visible under s. The search text matches
// case-insensitively against the title or the category.
func (s State) Matches(it Item) bool {
	if s.ActiveCategory != All && it.Category != s.ActiveCategory {
		return false
	}
	kw := strings.ToLower(s.SearchText)
	if kw == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Title), kw) ||
		strings.Contains(strings.ToLower(it.Category), kw)
}

// Visible returns one flag per item.
func Visible(s State, items []Item) []bool {
	out := make([]bool, len(items))
	for i, it := range items {
		out[i] = s.Matches(it)
	}
	return out
}

// Count returns how many items are visible under s.
func Count(s State, items []Item) int {
	n := 0
	for _, it := range items {
		if s.Matches(it) {
			n++
		}
	}
	return n
}
