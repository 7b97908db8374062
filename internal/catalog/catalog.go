package catalog

import (
	"errors"
	"slices"
	"time"
)

// FeaturedCollectionID marks an image as featured without a matching
// collection entry.
const FeaturedCollectionID = "featured"

var VirtualCollections = []string{FeaturedCollectionID}

var (
	ErrEmptyImagePath    = errors.New("image path cannot be empty")
	ErrEmptyCollectionID = errors.New("collection id cannot be empty")
)

type Catalog struct {
	Collections []Collection   `yaml:"collections"`
	Images      []GalleryImage `yaml:"images"`
}

type Collection struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type GalleryImage struct {
	Path string `yaml:"path"`
	Meta Meta   `yaml:"meta"`
}

type Meta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Collections []string `yaml:"collections"`

	// Capture is filled at scan time only and never persisted.
	Capture CaptureMetadata `yaml:"-"`
}

type CaptureMetadata struct {
	CaptureDate             *time.Time
	FNumber                 *float64
	FocalLength             *float64
	ISO                     *int
	ShutterSpeedDenominator *int
	CameraModel             *string
	LensModel               *string
}

func (c CaptureMetadata) IsEmpty() bool {
	return c == CaptureMetadata{}
}

// NullCatalog is the catalog used when no catalog file exists yet.
func NullCatalog() Catalog {
	return Catalog{
		Collections: []Collection{},
		Images:      []GalleryImage{},
	}
}

func NewCollection(dir string) Collection {
	return Collection{ID: dir, Name: CaptionFor(dir)}
}

// Image finds the record for path. An exact match wins; otherwise a path
// that differs only in unicode normalization is accepted.
func (c Catalog) Image(path string) (GalleryImage, bool) {
	i := slices.IndexFunc(c.Images, func(img GalleryImage) bool { return img.Path == path })
	if i < 0 {
		i = slices.IndexFunc(c.Images, func(img GalleryImage) bool { return SamePath(img.Path, path) })
	}
	if i < 0 {
		return GalleryImage{}, false
	}
	return c.Images[i], true
}

func (c Catalog) Collection(id string) (Collection, bool) {
	i := slices.IndexFunc(c.Collections, func(col Collection) bool { return col.ID == id })
	if i < 0 {
		return Collection{}, false
	}
	return c.Collections[i], true
}

// ReplaceImage swaps the record with the same path and reports whether one
// was found. The receiver's slices are not shared with the result.
func (c Catalog) ReplaceImage(img GalleryImage) (Catalog, bool) {
	i := slices.IndexFunc(c.Images, func(existing GalleryImage) bool { return existing.Path == img.Path })
	if i < 0 {
		return c, false
	}
	out := c.Clone()
	out.Images[i] = img
	return out, true
}

func (c Catalog) Clone() Catalog {
	out := Catalog{
		Collections: slices.Clone(c.Collections),
		Images:      make([]GalleryImage, len(c.Images)),
	}
	if out.Collections == nil {
		out.Collections = []Collection{}
	}
	for i, img := range c.Images {
		out.Images[i] = img.Clone()
	}
	return out
}

func (img GalleryImage) Clone() GalleryImage {
	out := img
	out.Meta.Collections = slices.Clone(img.Meta.Collections)
	if out.Meta.Collections == nil {
		out.Meta.Collections = []string{}
	}
	return out
}

func (img GalleryImage) InCollection(id string) bool {
	return slices.Contains(img.Meta.Collections, id)
}

func (img GalleryImage) IsFeatured() bool {
	return img.InCollection(FeaturedCollectionID)
}

// WithFeatured returns a copy with the featured marker added or removed.
func (img GalleryImage) WithFeatured(featured bool) GalleryImage {
	out := img.Clone()
	has := out.IsFeatured()
	switch {
	case featured && !has:
		out.Meta.Collections = append(out.Meta.Collections, FeaturedCollectionID)
	case !featured && has:
		out.Meta.Collections = slices.DeleteFunc(out.Meta.Collections, func(id string) bool {
			return id == FeaturedCollectionID
		})
	}
	return out
}

func IsVirtualCollection(id string) bool {
	return slices.Contains(VirtualCollections, id)
}
