// Package fixture writes small image files for tests: plain JPEG and PNG
// images, JPEGs carrying an EXIF block, corrupt files and whole gallery trees.
package fixture

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	DefaultWidth  = 40
	DefaultHeight = 20
)

// Rational is a numerator and denominator pair. A zero denominator means the
// tag is not written.
type Rational [2]uint32

// Exif lists the tags a fixture JPEG can carry. Zero values are omitted.
type Exif struct {
	Model            string
	LensModel        string
	DateTimeOriginal string // "2006:01:02 15:04:05"
	FNumber          Rational
	FocalLength      Rational
	ExposureTime     Rational
	ISO              uint16
	Orientation      uint16
}

type ImageOpt func(*imageConfig)

type imageConfig struct {
	width  int
	height int
	exif   *Exif
}

func WithSize(width, height int) ImageOpt {
	return func(c *imageConfig) {
		c.width = width
		c.height = height
	}
}

func WithExif(tags Exif) ImageOpt {
	return func(c *imageConfig) {
		c.exif = &tags
	}
}

// JPEG writes a JPEG image to path, creating parent directories.
func JPEG(tb testing.TB, path string, opts ...ImageOpt) string {
	tb.Helper()
	cfg := newConfig(opts)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, pattern(cfg.width, cfg.height), &jpeg.Options{Quality: 90}); err != nil {
		tb.Fatalf("encode jpeg: %v", err)
	}
	data := buf.Bytes()
	if cfg.exif != nil {
		data = spliceAPP1(data, exifPayload(*cfg.exif))
	}

	write(tb, path, data)
	return path
}

// PNG writes a PNG image to path, creating parent directories.
func PNG(tb testing.TB, path string, opts ...ImageOpt) string {
	tb.Helper()
	cfg := newConfig(opts)

	var buf bytes.Buffer
	if err := png.Encode(&buf, pattern(cfg.width, cfg.height)); err != nil {
		tb.Fatalf("encode png: %v", err)
	}

	write(tb, path, buf.Bytes())
	return path
}

// Corrupt writes bytes that no image decoder accepts.
func Corrupt(tb testing.TB, path string) string {
	tb.Helper()
	write(tb, path, []byte("definitely not an image"))
	return path
}

// Tree writes one image per relative path under root, choosing the encoder
// from the extension, and returns root.
func Tree(tb testing.TB, root string, rels ...string) string {
	tb.Helper()
	for _, rel := range rels {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.EqualFold(filepath.Ext(rel), ".png") {
			PNG(tb, path)
		} else {
			JPEG(tb, path)
		}
	}
	return root
}

func newConfig(opts []ImageOpt) *imageConfig {
	cfg := &imageConfig{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func write(tb testing.TB, path string, data []byte) {
	tb.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("write fixture: %v", err)
	}
}

// pattern is red on the left half and blue on the right, so rotations and
// flips are observable after decoding.
func pattern(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			c := color.RGBA{R: 255, A: 255}
			if x >= width/2 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func spliceAPP1(jpg, payload []byte) []byte {
	segment := []byte{0xFF, 0xE1}
	segment = binary.BigEndian.AppendUint16(segment, uint16(len(payload)+2))
	segment = append(segment, payload...)

	out := make([]byte, 0, len(jpg)+len(segment))
	out = append(out, jpg[:2]...) // SOI
	out = append(out, segment...)
	return append(out, jpg[2:]...)
}

const (
	typeASCII    = 2
	typeShort    = 3
	typeLong     = 4
	typeRational = 5

	tagModel            = 0x0110
	tagOrientation      = 0x0112
	tagExifIFDPointer   = 0x8769
	tagExposureTime     = 0x829A
	tagFNumber          = 0x829D
	tagISO              = 0x8827
	tagDateTimeOriginal = 0x9003
	tagFocalLength      = 0x920A
	tagLensModel        = 0xA434
)

type ifdEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value []byte
}

func exifPayload(tags Exif) []byte {
	var ifd0, sub []ifdEntry

	if tags.Model != "" {
		ifd0 = append(ifd0, asciiEntry(tagModel, tags.Model))
	}
	if tags.Orientation != 0 {
		ifd0 = append(ifd0, shortEntry(tagOrientation, tags.Orientation))
	}
	if tags.ExposureTime[1] != 0 {
		sub = append(sub, rationalEntry(tagExposureTime, tags.ExposureTime))
	}
	if tags.FNumber[1] != 0 {
		sub = append(sub, rationalEntry(tagFNumber, tags.FNumber))
	}
	if tags.ISO != 0 {
		sub = append(sub, shortEntry(tagISO, tags.ISO))
	}
	if tags.DateTimeOriginal != "" {
		sub = append(sub, asciiEntry(tagDateTimeOriginal, tags.DateTimeOriginal))
	}
	if tags.FocalLength[1] != 0 {
		sub = append(sub, rationalEntry(tagFocalLength, tags.FocalLength))
	}
	if tags.LensModel != "" {
		sub = append(sub, asciiEntry(tagLensModel, tags.LensModel))
	}

	return append([]byte("Exif\x00\x00"), buildTIFF(ifd0, sub)...)
}

// buildTIFF lays out a little-endian TIFF with IFD0, an optional EXIF sub-IFD
// and a trailing data area for values wider than four bytes.
func buildTIFF(ifd0, sub []ifdEntry) []byte {
	le := binary.LittleEndian
	ifdSize := func(n int) int { return 2 + 12*n + 4 }

	if len(sub) > 0 {
		ifd0 = append(ifd0, ifdEntry{tag: tagExifIFDPointer, typ: typeLong, count: 1})
	}
	subOffset := 8 + ifdSize(len(ifd0))
	dataOffset := subOffset
	if len(sub) > 0 {
		ifd0[len(ifd0)-1].value = le.AppendUint32(nil, uint32(subOffset))
		dataOffset += ifdSize(len(sub))
	}

	var data []byte
	writeIFD := func(buf []byte, entries []ifdEntry) []byte {
		buf = le.AppendUint16(buf, uint16(len(entries)))
		for _, e := range entries {
			buf = le.AppendUint16(buf, e.tag)
			buf = le.AppendUint16(buf, e.typ)
			buf = le.AppendUint32(buf, e.count)
			if len(e.value) <= 4 {
				inline := make([]byte, 4)
				copy(inline, e.value)
				buf = append(buf, inline...)
				continue
			}
			buf = le.AppendUint32(buf, uint32(dataOffset+len(data)))
			data = append(data, e.value...)
			if len(data)%2 == 1 {
				data = append(data, 0)
			}
		}
		return le.AppendUint32(buf, 0)
	}

	buf := append([]byte("II*\x00"), le.AppendUint32(nil, 8)...)
	buf = writeIFD(buf, ifd0)
	if len(sub) > 0 {
		buf = writeIFD(buf, sub)
	}
	return append(buf, data...)
}

func asciiEntry(tag uint16, s string) ifdEntry {
	v := append([]byte(s), 0)
	return ifdEntry{tag: tag, typ: typeASCII, count: uint32(len(v)), value: v}
}

func shortEntry(tag uint16, v uint16) ifdEntry {
	return ifdEntry{tag: tag, typ: typeShort, count: 1, value: binary.LittleEndian.AppendUint16(nil, v)}
}

func rationalEntry(tag uint16, r Rational) ifdEntry {
	v := binary.LittleEndian.AppendUint32(nil, r[0])
	v = binary.LittleEndian.AppendUint32(v, r[1])
	return ifdEntry{tag: tag, typ: typeRational, count: 1, value: v}
}
