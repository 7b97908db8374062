package scan

import (
	"fmt"
	"gallery/internal/catalog"
	"io"
	"math"
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
)

// ReadCapture opens path and reads its embedded capture metadata. A file
// without EXIF yields empty metadata and no error; only failing to open the
// file is an error.
func ReadCapture(path string) (catalog.CaptureMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalog.CaptureMetadata{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	return decodeCapture(f), nil
}

func decodeCapture(r io.Reader) catalog.CaptureMetadata {
	x, err := exif.Decode(r)
	if x == nil || (err != nil && exif.IsCriticalError(err)) {
		return catalog.CaptureMetadata{}
	}

	var c catalog.CaptureMetadata
	if t, err := x.DateTime(); err == nil && !t.IsZero() {
		c.CaptureDate = &t
	}
	if v, ok := ratFloat(x, exif.FNumber); ok {
		c.FNumber = &v
	}
	if v, ok := ratFloat(x, exif.FocalLength); ok {
		c.FocalLength = &v
	}
	if v, ok := intField(x, exif.ISOSpeedRatings); ok {
		c.ISO = &v
	}
	if v, ok := shutterDenominator(x); ok {
		c.ShutterSpeedDenominator = &v
	}
	if v, ok := stringField(x, exif.Model); ok {
		c.CameraModel = &v
	}
	if v, ok := stringField(x, exif.LensModel); ok {
		c.LensModel = &v
	}
	return c
}

func rat(x *exif.Exif, name exif.FieldName) (num, den int64, ok bool) {
	tag, err := x.Get(name)
	if err != nil || tag.Count == 0 {
		return 0, 0, false
	}
	num, den, err = tag.Rat2(0)
	if err != nil || den == 0 {
		return 0, 0, false
	}
	return num, den, true
}

func ratFloat(x *exif.Exif, name exif.FieldName) (float64, bool) {
	num, den, ok := rat(x, name)
	if !ok {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// shutterDenominator turns an exposure of 1/250s into 250. Exposures of a
// second or longer have no meaningful denominator and are omitted.
func shutterDenominator(x *exif.Exif) (int, bool) {
	num, den, ok := rat(x, exif.ExposureTime)
	if !ok || num <= 0 || num >= den {
		return 0, false
	}
	if num == 1 {
		return int(den), true
	}
	return int(math.Round(float64(den) / float64(num))), true
}

func intField(x *exif.Exif, name exif.FieldName) (int, bool) {
	tag, err := x.Get(name)
	if err != nil || tag.Count == 0 {
		return 0, false
	}
	v, err := tag.Int(0)
	if err != nil {
		return 0, false
	}
	return v, true
}

func stringField(x *exif.Exif, name exif.FieldName) (string, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return "", false
	}
	s, err := tag.StringVal()
	if err != nil {
		return "", false
	}
	s = strings.TrimSpace(strings.TrimRight(s, "\x00"))
	return s, s != ""
}
