package query

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrAssetNotFound = errors.New("image asset not found")

// AssetRef names an image by its catalog-relative path and the images root
// that path is relative to.
type AssetRef struct {
	Root string
	Path string
}

// Asset describes a loadable image file.
type Asset struct {
	File   string
	Format string
	Width  int
	Height int
}

// AssetLoader resolves catalog paths to assets. Implementations return an
// error wrapping ErrAssetNotFound when the path does not name an asset.
type AssetLoader interface {
	Load(ref AssetRef) (Asset, error)
}

// FSAssetLoader reads assets from the local filesystem.
type FSAssetLoader struct{}

func (FSAssetLoader) Load(ref AssetRef) (Asset, error) {
	rel := filepath.FromSlash(ref.Path)
	if !filepath.IsLocal(rel) {
		return Asset{}, fmt.Errorf("%w: %q is outside %q", ErrAssetNotFound, ref.Path, ref.Root)
	}
	file := filepath.Join(ref.Root, rel)

	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		return Asset{}, fmt.Errorf("%w: %s", ErrAssetNotFound, file)
	}
	if err != nil {
		return Asset{}, fmt.Errorf("open asset: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Asset{}, fmt.Errorf("read asset %s: %w", file, err)
	}
	return Asset{File: file, Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
