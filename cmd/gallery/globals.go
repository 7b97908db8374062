package main

import (
	"fmt"
	"gallery/cmd/gallery/render"
	"gallery/internal/catalog"
	"gallery/internal/config"
	"gallery/internal/indexer"
	"gallery/internal/query"
	"gallery/internal/scan"
	"io"
	"log/slog"
	"os"
)

type Globals struct {
	Config      config.Config
	Store       *catalog.YAMLStore
	Assets      query.AssetLoader
	Out         io.Writer
	Render      render.Renderer
	Logger      *slog.Logger
	CatalogPath string
	// EditForm fills img interactively. Collection choices come from c.
	EditForm func(c catalog.Catalog, img *catalog.GalleryImage) error
}

// imagesRoot expands dir and checks that it is an existing directory.
func imagesRoot(dir string) (string, error) {
	if dir == "" {
		return "", indexer.ErrInvalidRoot
	}
	root, err := config.ExpandPath(dir)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", indexer.ErrInvalidRoot
	}
	return root, nil
}

func (g *Globals) catalogPath(root string) string {
	if g.CatalogPath != "" {
		return g.CatalogPath
	}
	return g.Config.CatalogPath(root)
}

func (g *Globals) indexer() *indexer.Indexer {
	return &indexer.Indexer{
		Store: g.Store,
		Scanner: &scan.Scanner{
			Extensions:  g.Config.Extensions,
			Exclude:     []string{g.Config.ThumbnailDir},
			Concurrency: g.Config.Concurrency,
			Logger:      g.Logger,
		},
		Logger:      g.Logger,
		FileName:    g.Config.FileName,
		CatalogPath: g.CatalogPath,
	}
}

// queryService resolves images against root even when --catalog points
// elsewhere.
func (g *Globals) queryService(root string) *query.Service {
	s := query.NewService(g.Store, g.Assets, g.Logger)
	s.ImagesRoot = root
	return s
}
