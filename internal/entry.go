// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/pptgallery/internal/site"
	"github.com/starford/pptgallery/internal/watch"
)

// Run builds the gallery once and, in watch mode, keeps rebuilding until
// ctx is cancelled or a shutdown signal arrives.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{logOutput: os.Stderr}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := newLogger(cfg.App, app.logOutput)
	slog.SetDefault(logger)

	logger.Debug("Configuration loaded",
		slog.String("source_dir", cfg.Source.Dir),
		slog.String("extension", cfg.Source.Extension),
		slog.String("output_path", cfg.Output.Path),
		slog.String("lang", cfg.Site.Lang),
		slog.String("log_level", cfg.App.LogLevel.String()))

	builder, err := site.NewBuilder(site.Options{
		SourceDir:     cfg.Source.Dir,
		Extension:     cfg.Source.Extension,
		OutputPath:    cfg.Output.Path,
		Uncategorized: cfg.Site.Uncategorized,
		Lang:          cfg.Site.Tag(),
		Title:         cfg.Site.Title,
		Favicon:       cfg.Site.Favicon,
		AllLabel:      cfg.Site.AllLabel,
	}, logger)
	if err != nil {
		return fmt.Errorf("init builder: %w", err)
	}

	if _, err := builder.Build(); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	if !app.watch {
		return nil
	}
	return runWatch(ctx, builder, logger)
}

func runWatch(ctx context.Context, builder *site.Builder, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := watch.Watch(gCtx, watch.Options{
			Dir:       builder.SourceDir(),
			Extension: builder.Extension(),
		}, logger, func() error {
			_, err := builder.Build()
			return err
		})
		if err != nil {
			return fmt.Errorf("watcher: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Watch error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Watch stopped")
	return nil
}

func newLogger(cfg ApplicationConfig, w io.Writer) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
