// Package thumbnail writes width-bounded copies of gallery images.
package thumbnail

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/gift"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
)

const Suffix = "-thumbnail"

// PathFor maps an image under sourceRoot to its thumbnail under outputRoot,
// keeping the relative directory: kuku/a.jpg becomes kuku/a-thumbnail.jpg.
func PathFor(sourceRoot, outputRoot, imagePath string) (string, error) {
	rel, err := filepath.Rel(sourceRoot, imagePath)
	if err != nil {
		return "", fmt.Errorf("relative path of %q: %w", imagePath, err)
	}
	ext := filepath.Ext(rel)
	return filepath.Join(outputRoot, strings.TrimSuffix(rel, ext)+Suffix+ext), nil
}

// Make writes a thumbnail of src to dst no wider than maxWidth, after
// applying the EXIF orientation of src. Smaller images are not enlarged.
// PNG sources produce PNG; everything else is encoded as JPEG at quality.
func Make(src, dst string, maxWidth, quality int) (err error) {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	var orient gift.Filter
	if x, xerr := exif.Decode(f); x != nil && xerr == nil {
		orient = orientationFilter(x)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %q: %w", src, err)
	}
	if orient != nil {
		img = apply(img, orient)
	}
	img = scaleToWidth(img, maxWidth)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			out.Close()
			_ = os.Remove(dst)
		}
	}()

	if format == "png" {
		err = png.Encode(out, img)
	} else {
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		return fmt.Errorf("encode %q: %w", dst, err)
	}
	return out.Close()
}

func orientationFilter(x *exif.Exif) gift.Filter {
	tag, err := x.Get(exif.Orientation)
	if err != nil || tag.Count == 0 {
		return nil
	}
	o, err := tag.Int(0)
	if err != nil {
		return nil
	}
	switch o {
	case 2:
		return gift.FlipHorizontal()
	case 3:
		return gift.Rotate180()
	case 4:
		return gift.FlipVertical()
	case 5:
		return gift.Transpose()
	case 6:
		return gift.Rotate270()
	case 7:
		return gift.Transverse()
	case 8:
		return gift.Rotate90()
	}
	return nil
}

func apply(src image.Image, filter gift.Filter) image.Image {
	g := gift.New(filter)
	var dst draw.Image
	switch src.(type) {
	case *image.Gray:
		dst = image.NewGray(g.Bounds(src.Bounds()))
	default:
		dst = image.NewRGBA(g.Bounds(src.Bounds()))
	}
	g.Draw(dst, src)
	return dst
}

func scaleToWidth(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}
	height := max(1, b.Dy()*maxWidth/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
