// Package site runs the scan → parse → sort → render → write pipeline.
package site

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/text/language"

	"github.com/starford/pptgallery/internal/checksum"
	"github.com/starford/pptgallery/internal/gallery"
	"github.com/starford/pptgallery/internal/models"
	"github.com/starford/pptgallery/internal/parser"
	"github.com/starford/pptgallery/internal/storage"
)

// Options configures a Builder.
type Options struct {
	SourceDir     string
	Extension     string
	OutputPath    string
	Uncategorized string
	Lang          language.Tag

	Title    string
	Favicon  string
	AllLabel string
}

// Builder produces the gallery document. It holds no state between
// builds besides the parsed template.
type Builder struct {
	opts     Options
	parser   *parser.Parser
	renderer *gallery.Renderer
	logger   *slog.Logger
}

// NewBuilder validates paths and parses the page template.
func NewBuilder(opts Options, logger *slog.Logger) (*Builder, error) {
	absOut, err := filepath.Abs(opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("site: resolve output: %w", err)
	}
	absSrc, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("site: resolve source: %w", err)
	}
	linkBase, err := filepath.Rel(filepath.Dir(absOut), absSrc)
	if err != nil {
		// Different volumes; fall back to an absolute link.
		linkBase = absSrc
	}

	r, err := gallery.NewRenderer(gallery.Page{
		Title:     opts.Title,
		Lang:      opts.Lang.String(),
		Favicon:   opts.Favicon,
		AllLabel:  opts.AllLabel,
		Extension: opts.Extension,
		SourceDir: filepath.ToSlash(filepath.Clean(opts.SourceDir)),
		LinkBase:  filepath.ToSlash(linkBase),
	})
	if err != nil {
		return nil, err
	}

	opts.OutputPath = absOut
	opts.SourceDir = absSrc
	return &Builder{
		opts:     opts,
		parser:   parser.New(opts.Extension, opts.Uncategorized),
		renderer: r,
		logger:   logger,
	}, nil
}

// SourceDir returns the absolute source directory.
func (b *Builder) SourceDir() string { return b.opts.SourceDir }

// Extension returns the deck file extension.
func (b *Builder) Extension() string { return b.opts.Extension }

// Build runs the pipeline once. Only a failure to write the output is
// returned as an error; a missing or unreadable source directory yields
// an empty gallery.
func (b *Builder) Build() (models.Summary, error) {
	b.logger.Info("scanning decks", slog.String("source", b.opts.SourceDir))

	decks, skipped := b.scan()
	gallery.NewSorter(b.opts.Lang, b.opts.Uncategorized).Sort(decks)
	categories := gallery.Categories(decks)

	b.logger.Info("decks found",
		slog.Int("count", len(decks)),
		slog.Int("skipped", skipped),
		slog.Any("categories", categories))

	doc, err := b.renderer.RenderBytes(decks)
	if err != nil {
		return models.Summary{}, err
	}

	written, err := storage.WriteFile(b.opts.OutputPath, doc)
	if err != nil {
		return models.Summary{}, err
	}

	sum := models.Summary{
		Total:      len(decks),
		Skipped:    skipped,
		Categories: categories,
		Output:     b.opts.OutputPath,
		Written:    written,
		Checksum:   checksum.Sum(doc),
	}
	if written {
		b.logger.Info("gallery written", slog.String("output", sum.Output), slog.String("checksum", sum.Checksum))
	} else {
		b.logger.Info("gallery unchanged", slog.String("output", sum.Output))
	}
	return sum, nil
}

// scan lists and parses the source directory. Unparseable names are
// counted and skipped.
func (b *Builder) scan() ([]models.Deck, int) {
	store, created, err := storage.NewFS(b.opts.SourceDir)
	if err != nil {
		b.logger.Warn("source directory unavailable", slog.String("error", err.Error()))
		return nil, 0
	}
	if created {
		b.logger.Info("created source directory", slog.String("source", store.Root()))
		return nil, 0
	}

	return b.parseAll(store)
}

func (b *Builder) parseAll(store storage.Provider) ([]models.Deck, int) {
	names, err := store.List(b.opts.Extension)
	if err != nil {
		b.logger.Warn("list failed", slog.String("root", store.Root()), slog.String("error", err.Error()))
		return nil, 0
	}

	decks := make([]models.Deck, 0, len(names))
	skipped := 0
	for _, name := range names {
		res := b.parser.Parse(name)
		if !res.OK() {
			b.logger.Debug("skipping unparseable name", slog.String("name", name))
			skipped++
			continue
		}
		decks = append(decks, res.Deck)
	}
	return decks, skipped
}
