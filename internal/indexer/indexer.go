// Package indexer runs the scan pipeline that keeps a gallery's catalog file
// in step with the images on disk.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"gallery/internal/catalog"
	"log/slog"
	"os"
	"path/filepath"
)

const DefaultFileName = "gallery.yaml"

var ErrInvalidRoot = errors.New("Invalid directory path provided.")

type Scanner interface {
	Scan(ctx context.Context, root string) (catalog.Catalog, error)
}

type Indexer struct {
	Store   catalog.Store
	Scanner Scanner
	Logger  *slog.Logger
	// FileName is the catalog file inside the images root.
	FileName string
	// CatalogPath, when set, replaces root/FileName.
	CatalogPath string
}

// Update loads the catalog next to the images under root (or starts from an
// empty one), merges a fresh scan into it, validates the result and writes it
// back. Nothing is written unless every step succeeds.
func (ix *Indexer) Update(ctx context.Context, root string) (string, catalog.Catalog, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", catalog.Catalog{}, ErrInvalidRoot
	}
	if root, err = filepath.Abs(root); err != nil {
		return "", catalog.Catalog{}, fmt.Errorf("resolve root: %w", err)
	}

	path := ix.catalogPath(root)
	existing, err := ix.Store.LoadOrEmpty(path)
	if err != nil {
		return path, catalog.Catalog{}, err
	}

	scanned, err := ix.Scanner.Scan(ctx, root)
	if err != nil {
		return path, catalog.Catalog{}, err
	}

	for _, stale := range catalog.Stale(existing, scanned) {
		ix.logger().Warn("Catalog entry has no file on disk", "path", stale)
	}

	merged := catalog.Merge(existing, scanned)
	if err := catalog.Validate(merged); err != nil {
		return path, catalog.Catalog{}, fmt.Errorf("validate %q: %w", path, err)
	}

	if err := ix.Store.Persist(path, merged); err != nil {
		return path, catalog.Catalog{}, err
	}

	ix.logger().Debug("Catalog updated", "path", path,
		"images", len(merged.Images), "collections", len(merged.Collections))
	return path, merged, nil
}

func (ix *Indexer) catalogPath(root string) string {
	if ix.CatalogPath != "" {
		return ix.CatalogPath
	}
	name := ix.FileName
	if name == "" {
		name = DefaultFileName
	}
	return filepath.Join(root, name)
}

func (ix *Indexer) logger() *slog.Logger {
	if ix.Logger != nil {
		return ix.Logger
	}
	return slog.Default()
}
