package main

import (
	"cmp"
	"context"
	"fmt"
	"gallery/internal/config"
	"gallery/internal/thumbnail"
	"gallery/internal/ui"
	"path/filepath"
)

type ThumbnailsCmd struct {
	Dir     string `arg:"" help:"Target directory holding the source directory"`
	Quality int    `short:"q" help:"JPEG quality, 1-100 (defaults to $GALLERY_THUMBNAIL_QUALITY)"`
	Width   int    `short:"w" help:"Maximum thumbnail width (defaults to $GALLERY_THUMBNAIL_WIDTH)"`
	Output  string `short:"o" help:"Output directory name (defaults to $GALLERY_THUMBNAIL_DIR)"`
	Source  string `short:"s" help:"Source directory name (defaults to $GALLERY_SOURCE_DIR)"`
}

func (cmd *ThumbnailsCmd) options(cfg config.Config) (thumbnail.Options, error) {
	opts := thumbnail.Options{
		Width:       cmp.Or(cmd.Width, cfg.ThumbnailWidth),
		Quality:     cmp.Or(cmd.Quality, cfg.ThumbnailQuality),
		Output:      cmp.Or(cmd.Output, cfg.ThumbnailDir),
		Source:      cmp.Or(cmd.Source, cfg.SourceDir),
		Concurrency: cfg.Concurrency,
	}
	if opts.Quality < 1 || opts.Quality > 100 {
		return thumbnail.Options{}, fmt.Errorf("quality must be between 1 and 100, got %d", opts.Quality)
	}
	if opts.Width < 1 {
		return thumbnail.Options{}, fmt.Errorf("width must be positive, got %d", opts.Width)
	}
	return opts, nil
}

func (cmd *ThumbnailsCmd) Run(g *Globals) error {
	target, err := imagesRoot(cmd.Dir)
	if err != nil {
		return err
	}
	opts, err := cmd.options(g.Config)
	if err != nil {
		return err
	}

	gen := &thumbnail.Generator{Options: opts, Logger: g.Logger}
	results, err := gen.Run(context.Background(), target)
	if err != nil {
		return err
	}

	sourceRoot := filepath.Join(target, opts.Source)
	outputRoot := filepath.Join(target, opts.Output)
	if len(results) == 0 {
		fmt.Fprintf(g.Out, "No images found in %s\n", sourceRoot)
		return nil
	}

	checks := make([]string, len(results))
	for i, r := range results {
		rel, err := filepath.Rel(outputRoot, r.Thumbnail)
		if err != nil {
			rel = r.Thumbnail
		}
		checks[i] = filepath.ToSlash(rel)
	}
	heading := fmt.Sprintf("Created %d thumbnails in %s", len(results), outputRoot)
	fmt.Fprint(g.Out, ui.RenderChecks(heading, "from "+sourceRoot, checks))
	return nil
}
