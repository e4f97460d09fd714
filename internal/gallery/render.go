// Package gallery sorts decks and renders the self-contained gallery page.
package gallery

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/starford/pptgallery/internal/filter"
	"github.com/starford/pptgallery/internal/models"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// Page carries the fixed, per-site values of the document.
type Page struct {
	Title     string
	Lang      string
	Favicon   string
	AllLabel  string
	Extension string
	// SourceDir is shown in the empty-gallery hint.
	SourceDir string
	// LinkBase is the slash-separated path from the output document to the
	// source directory. Empty or "." links to the filename directly.
	LinkBase string
}

type itemView struct {
	Category string
	Title    string
	Href     string
}

type pageView struct {
	Page
	All        string
	Total      int
	Visible    int
	Categories []string
	Items      []itemView
}

// Renderer turns a sorted deck list into the gallery document.
type Renderer struct {
	tmpl *template.Template
	page Page
}

// NewRenderer parses the embedded page template.
func NewRenderer(p Page) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("gallery: parse template: %w", err)
	}
	return &Renderer{tmpl: tmpl, page: p}, nil
}

// Render writes the document for decks, which must already be sorted.
// Output depends only on decks and the Page, so identical input renders
// byte-identical documents.
func (r *Renderer) Render(w io.Writer, decks []models.Deck) error {
	v := pageView{
		Page:       r.page,
		All:        filter.All,
		Total:      len(decks),
		Categories: Categories(decks),
		Items:      make([]itemView, 0, len(decks)),
	}

	filterItems := make([]filter.Item, 0, len(decks))
	for _, d := range decks {
		v.Items = append(v.Items, itemView{
			Category: d.Category,
			Title:    d.Title,
			Href:     Href(r.page.LinkBase, d.Filename),
		})
		filterItems = append(filterItems, filter.Item{Category: d.Category, Title: d.Title})
	}
	v.Visible = filter.Count(filter.Initial(), filterItems)

	if err := r.tmpl.ExecuteTemplate(w, "index.html.tmpl", v); err != nil {
		return fmt.Errorf("gallery: render: %w", err)
	}
	return nil
}

// RenderBytes is Render into a fresh buffer.
func (r *Renderer) RenderBytes(decks []models.Deck) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, decks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Href joins base and the percent-encoded filename.
func Href(base, filename string) string {
	escaped := EscapeFilename(filename)
	base = strings.TrimSuffix(base, "/")
	if base == "" || base == "." {
		return escaped
	}
	return base + "/" + escaped
}

// EscapeFilename percent-encodes every byte outside A-Z a-z 0-9 - _ . ~,
// with spaces as %20.
func EscapeFilename(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}
