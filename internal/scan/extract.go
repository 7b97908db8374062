package scan

import (
	"fmt"
	"gallery/internal/catalog"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
)

// Extractor builds the catalog record for one image file.
type Extractor struct{}

// Extract derives the record for file under root. The file must open and
// carry a decodable image header; missing EXIF is not an error.
func (Extractor) Extract(root, file string) (catalog.GalleryImage, error) {
	f, err := os.Open(file)
	if err != nil {
		return catalog.GalleryImage{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return catalog.GalleryImage{}, fmt.Errorf("read image header %q: %w", file, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return catalog.GalleryImage{}, fmt.Errorf("rewind %q: %w", file, err)
	}

	rel := catalog.RelativePathOf(root, file)
	return catalog.GalleryImage{
		Path: rel,
		Meta: catalog.Meta{
			Title:       catalog.TitleFor(rel),
			Description: "",
			Collections: catalog.CollectionIDFor(rel),
			Capture:     decodeCapture(f),
		},
	}, nil
}
