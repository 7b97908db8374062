package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"gallery/internal/scan"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var DefaultExtensions = []string{"jpg", "jpeg", "png"}

type Options struct {
	Width       int
	Quality     int
	Output      string
	Source      string
	Concurrency int
	Extensions  []string
}

type Result struct {
	Source    string
	Thumbnail string
}

type Generator struct {
	Options Options
	Logger  *slog.Logger
}

// Run thumbnails every image under target/Source into target/Output. The
// output directory is never read as a source. Results follow the listing
// order; the first failure stops the run.
func (g *Generator) Run(ctx context.Context, target string) ([]Result, error) {
	sourceRoot := filepath.Join(target, g.Options.Source)
	outputRoot := filepath.Join(target, g.Options.Output)

	exts := g.Options.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	images, err := scan.ListImages(sourceRoot, exts, []string{g.Options.Output})
	if errors.Is(err, fs.ErrNotExist) {
		g.logger().Info("No images found", "path", sourceRoot)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(images))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.limit())
	for i, src := range images {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dst, err := PathFor(sourceRoot, outputRoot, src)
			if err != nil {
				return err
			}
			if err := Make(src, dst, g.Options.Width, g.Options.Quality); err != nil {
				return fmt.Errorf("thumbnail %q: %w", src, err)
			}
			g.logger().Debug("Created thumbnail", "source", src, "thumbnail", dst)
			results[i] = Result{Source: src, Thumbnail: dst}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (g *Generator) limit() int {
	if g.Options.Concurrency > 0 {
		return g.Options.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}
