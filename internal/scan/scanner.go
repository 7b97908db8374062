package scan

import (
	"context"
	"fmt"
	"gallery/internal/catalog"
	"log/slog"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Scanner turns a directory of images into a fresh catalog.
type Scanner struct {
	Extensions []string
	// Exclude names directories that are never descended into, such as a
	// thumbnails output directory.
	Exclude []string
	// Concurrency bounds parallel extraction. Zero or less uses GOMAXPROCS.
	Concurrency int
	Logger      *slog.Logger
	Extractor   Extractor
}

// Scan lists the images under root and extracts a record for each. Records
// keep the listing order whatever order extraction finishes in. A file that
// fails extraction is logged and left out; collections are derived from the
// images that remain.
func (s *Scanner) Scan(ctx context.Context, root string) (catalog.Catalog, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("resolve scan root: %w", err)
	}
	exts := s.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	files, err := ListImages(root, exts, s.Exclude)
	if err != nil {
		return catalog.Catalog{}, err
	}

	results := make([]*catalog.GalleryImage, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit())
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := s.Extractor.Extract(root, file)
			if err != nil {
				s.logger().Warn("Skipping unreadable image", "path", file, "error", err)
				return nil
			}
			if img.Meta.Capture.IsEmpty() {
				s.logger().Debug("No capture metadata", "path", img.Path)
			}
			results[i] = &img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return catalog.Catalog{}, fmt.Errorf("scan %q: %w", root, err)
	}

	out := catalog.NullCatalog()
	kept := make([]string, 0, len(files))
	for _, img := range results {
		if img == nil {
			continue
		}
		out.Images = append(out.Images, *img)
		kept = append(kept, img.Path)
	}
	out.Collections = catalog.DeriveCollections(root, kept)
	return out, nil
}

func (s *Scanner) limit() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
