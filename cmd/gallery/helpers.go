package main

import (
	"fmt"
	"gallery/internal/catalog"
	"strconv"
	"strings"
)

// findImage looks up an image by catalog-relative path, or by a file path
// under root.
func findImage(c catalog.Catalog, root, query string) (catalog.GalleryImage, error) {
	key := catalog.RelativePathOf(root, query)
	img, ok := c.Image(key)
	if !ok {
		return catalog.GalleryImage{}, fmt.Errorf("no image found at path: %s", key)
	}
	return img, nil
}

func splitList(s string) []string {
	out := []string{}
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func exposureSummary(c catalog.CaptureMetadata) string {
	var parts []string
	if c.FNumber != nil {
		parts = append(parts, "f/"+strconv.FormatFloat(*c.FNumber, 'f', -1, 64))
	}
	if c.ShutterSpeedDenominator != nil {
		parts = append(parts, fmt.Sprintf("1/%ds", *c.ShutterSpeedDenominator))
	}
	if c.ISO != nil {
		parts = append(parts, fmt.Sprintf("ISO %d", *c.ISO))
	}
	if c.FocalLength != nil {
		parts = append(parts, strconv.FormatFloat(*c.FocalLength, 'f', -1, 64)+"mm")
	}
	return strings.Join(parts, " ")
}
