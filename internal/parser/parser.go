// Package parser maps deck filenames to category and title.
//
// Two filename shapes are recognised:
//
//	[<category>]<title><ext>
//	<title><ext>
//
// The first `]` always closes the category, so a title may itself contain
// brackets. Names that do not end with the extension, or that are nothing
// but the extension, are unparseable and skipped by callers.
package parser

import (
	"strings"

	"github.com/starford/pptgallery/internal/models"
)

// Kind tags which branch produced a Result.
type Kind int

const (
	Unparseable Kind = iota
	Categorized
	Uncategorized
)

func (k Kind) String() string {
	switch k {
	case Categorized:
		return "categorized"
	case Uncategorized:
		return "uncategorized"
	default:
		return "unparseable"
	}
}

// Result holds the output of parsing a single filename.
type Result struct {
	Kind Kind
	Deck models.Deck
}

// OK reports whether the filename produced a deck.
func (r Result) OK() bool { return r.Kind != Unparseable }

// Parser is configured with the deck extension and the category assigned
// to files without a bracket prefix.
type Parser struct {
	ext           string
	uncategorized string
}

// New returns a Parser for names ending in ext.
func New(ext, uncategorized string) *Parser {
	return &Parser{ext: ext, uncategorized: uncategorized}
}

// Parse classifies name.
func (p *Parser) Parse(name string) Result {
	base, ok := strings.CutSuffix(name, p.ext)
	if !ok || base == "" {
		return Result{Kind: Unparseable}
	}

	if category, title, ok := splitBracketPrefix(base); ok {
		return Result{
			Kind: Categorized,
			Deck: models.Deck{Category: category, Title: title, Filename: name},
		}
	}

	return Result{
		Kind: Uncategorized,
		Deck: models.Deck{Category: p.uncategorized, Title: base, Filename: name},
	}
}

// splitBracketPrefix splits "[cat]title" into its parts. Both parts must be
// non-empty.
func splitBracketPrefix(base string) (category, title string, ok bool) {
	rest, found := strings.CutPrefix(base, "[")
	if !found {
		return "", "", false
	}
	category, title, found = strings.Cut(rest, "]")
	if !found || category == "" || title == "" {
		return "", "", false
	}
	return category, title, true
}
