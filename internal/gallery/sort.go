package gallery

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/starford/pptgallery/internal/models"
)

// Sorter orders decks by category, then title, using locale collation.
// The uncategorized sentinel always sorts after every real category.
//
// A Sorter wraps a collate.Collator and must not be shared between
// goroutines.
type Sorter struct {
	col           *collate.Collator
	uncategorized string
}

// NewSorter returns a Sorter collating for tag.
func NewSorter(tag language.Tag, uncategorized string) *Sorter {
	return &Sorter{col: collate.New(tag), uncategorized: uncategorized}
}

// Sort orders decks in place. Decks that collate equal on both keys keep
// their input order.
func (s *Sorter) Sort(decks []models.Deck) {
	sort.SliceStable(decks, func(i, j int) bool {
		return s.compare(decks[i], decks[j]) < 0
	})
}

func (s *Sorter) compare(a, b models.Deck) int {
	if c := s.compareCategory(a.Category, b.Category); c != 0 {
		return c
	}
	return s.col.CompareString(a.Title, b.Title)
}

func (s *Sorter) compareCategory(a, b string) int {
	if a == b {
		return 0
	}
	switch {
	case a == s.uncategorized:
		return 1
	case b == s.uncategorized:
		return -1
	}
	return s.col.CompareString(a, b)
}

// Categories returns the distinct categories of decks in first-seen order.
// For sorted input this is the sorted category set.
func Categories(decks []models.Deck) []string {
	seen := make(map[string]struct{}, len(decks))
	var out []string
	for _, d := range decks {
		if _, ok := seen[d.Category]; ok {
			continue
		}
		seen[d.Category] = struct{}{}
		out = append(out, d.Category)
	}
	return out
}
