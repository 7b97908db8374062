// Package query answers read requests against a gallery catalog, resolving
// each catalog image to a loadable asset.
package query

import (
	"errors"
	"fmt"
	"gallery/internal/catalog"
	"log/slog"
	"path/filepath"
)

// CatalogError is the only error the query API returns. It wraps the load,
// validation or asset failure that stopped the request.
type CatalogError struct {
	GalleryPath string
	Err         error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("failed to load gallery data from %q: %v", e.GalleryPath, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

type ResolvedImage struct {
	Image catalog.GalleryImage
	Asset Asset
}

type Service struct {
	Store  catalog.Store
	Assets AssetLoader
	Logger *slog.Logger
	// ImagesRoot overrides the directory image paths are resolved against.
	// By default it is the directory holding the catalog file.
	ImagesRoot string
}

func NewService(store catalog.Store, assets AssetLoader, logger *slog.Logger) *Service {
	return &Service{Store: store, Assets: assets, Logger: logger}
}

// Resolve loads and validates the catalog at galleryPath and returns the
// images matching f with their assets. Images whose asset is missing or
// unreadable are logged and left out.
func (s *Service) Resolve(galleryPath string, f Filter) ([]ResolvedImage, error) {
	if err := f.check(); err != nil {
		return nil, &CatalogError{GalleryPath: galleryPath, Err: err}
	}

	c, err := s.load(galleryPath)
	if err != nil {
		return nil, err
	}

	root := s.ImagesRoot
	if root == "" {
		root = filepath.Dir(galleryPath)
	}
	resolved := []ResolvedImage{}
	for _, img := range c.Images {
		if !f.Match(img) {
			continue
		}
		asset, err := s.Assets.Load(AssetRef{Root: root, Path: img.Path})
		if err != nil {
			msg := "Cannot read image asset"
			if errors.Is(err, ErrAssetNotFound) {
				msg = "Image asset not found"
			}
			s.logger().Warn(msg, "path", img.Path, "gallery", galleryPath, "filter", f.String(), "error", err)
			continue
		}
		resolved = append(resolved, ResolvedImage{Image: img, Asset: asset})
	}
	return resolved, nil
}

func (s *Service) GetImages(galleryPath string) ([]ResolvedImage, error) {
	return s.Resolve(galleryPath, All())
}

func (s *Service) GetImagesByCollection(collectionID, galleryPath string) ([]ResolvedImage, error) {
	return s.Resolve(galleryPath, ByCollection(collectionID))
}

func (s *Service) GetFeatured(galleryPath string) ([]ResolvedImage, error) {
	return s.Resolve(galleryPath, Featured())
}

func (s *Service) GetCollections(galleryPath string) ([]catalog.Collection, error) {
	c, err := s.load(galleryPath)
	if err != nil {
		return nil, err
	}
	return c.Collections, nil
}

func (s *Service) load(galleryPath string) (catalog.Catalog, error) {
	c, err := s.Store.Load(galleryPath)
	if err != nil {
		return catalog.Catalog{}, &CatalogError{GalleryPath: galleryPath, Err: err}
	}
	if err := catalog.Validate(c); err != nil {
		return catalog.Catalog{}, &CatalogError{GalleryPath: galleryPath, Err: err}
	}
	return c, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
