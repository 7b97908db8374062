package proptest

import (
	"gallery/internal/catalog"

	"pgregory.net/rapid"
)

// verifyMergeInvariants checks merged against the inputs it was built from:
// existing records come first and untouched, new scanned records follow in
// scan order, and nothing else appears.
func verifyMergeInvariants(t *rapid.T, existing, scanned, merged catalog.Catalog) {
	t.Helper()
	assertNoDuplicatePaths(t, merged)
	assertNoDuplicateCollections(t, merged)

	if len(merged.Images) < len(existing.Images) {
		t.Fatalf("merge dropped images: %d existing, %d merged", len(existing.Images), len(merged.Images))
	}
	for i, img := range existing.Images {
		assertImagesEqual(t, img, merged.Images[i])
	}
	for i, col := range existing.Collections {
		if merged.Collections[i] != col {
			t.Fatalf("existing collection %q changed to %+v", col.ID, merged.Collections[i])
		}
	}

	known := make(map[string]bool, len(existing.Images))
	for _, img := range existing.Images {
		known[img.Path] = true
	}
	var added []catalog.GalleryImage
	for _, img := range scanned.Images {
		if !known[img.Path] {
			known[img.Path] = true
			added = append(added, img)
		}
	}
	rest := merged.Images[len(existing.Images):]
	if len(rest) != len(added) {
		t.Fatalf("expected %d new images, got %d", len(added), len(rest))
	}
	for i, img := range added {
		assertImagesEqual(t, img, rest[i])
	}

	for _, img := range scanned.Images {
		if _, ok := merged.Image(img.Path); !ok {
			t.Fatalf("scanned image %s missing from merge", img.Path)
		}
	}
	for _, col := range scanned.Collections {
		if _, ok := merged.Collection(col.ID); !ok {
			t.Fatalf("scanned collection %s missing from merge", col.ID)
		}
	}
}
