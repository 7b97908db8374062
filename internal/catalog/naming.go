package catalog

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// RelativePathOf expresses file relative to root with forward slashes.
// A path that is already relative is only cleaned, so the function is
// idempotent. The file name bytes are kept as found on disk.
func RelativePathOf(root, file string) string {
	rel := file
	if filepath.IsAbs(file) {
		if !filepath.IsAbs(root) {
			if abs, err := filepath.Abs(root); err == nil {
				root = abs
			}
		}
		if r, err := filepath.Rel(root, file); err == nil {
			rel = r
		}
	}
	return path.Clean(filepath.ToSlash(rel))
}

// SamePath reports whether two catalog paths name the same image once
// composed and decomposed unicode forms are treated alike.
func SamePath(a, b string) bool {
	return a == b || norm.NFC.String(a) == norm.NFC.String(b)
}

// CaptionFor turns a file or directory segment into a title such as
// "kuku-trees" -> "Kuku Trees".
func CaptionFor(segment string) string {
	if segment == "" {
		return ""
	}
	words := strings.Split(nonAlphanumeric.ReplaceAllString(segment, " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// CollectionIDFor returns the parent directory of relPath as the image's only
// collection, or no collection for images at the gallery root.
func CollectionIDFor(relPath string) []string {
	dir := path.Dir(relPath)
	if dir == "." || dir == "/" {
		return []string{}
	}
	return []string{dir}
}

// TitleFor derives an image title from its file name without extension.
func TitleFor(relPath string) string {
	base := path.Base(relPath)
	return CaptionFor(strings.TrimSuffix(base, path.Ext(base)))
}

// DeriveCollections returns one collection per distinct parent directory of
// files under root, in order of first appearance. Files may be absolute or
// already relative to root.
func DeriveCollections(root string, files []string) []Collection {
	seen := make(map[string]bool)
	collections := []Collection{}
	for _, f := range files {
		for _, id := range CollectionIDFor(RelativePathOf(root, f)) {
			if seen[id] {
				continue
			}
			seen[id] = true
			collections = append(collections, NewCollection(id))
		}
	}
	return collections
}
