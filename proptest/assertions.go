package proptest

import (
	"gallery/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

var catalogOpts = cmp.Options{
	cmpopts.EquateEmpty(),
	cmpopts.IgnoreFields(catalog.Meta{}, "Capture"),
}

func assertCatalogsEqual(t *rapid.T, expected, actual catalog.Catalog) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, catalogOpts); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func assertImagesEqual(t *rapid.T, expected, actual catalog.GalleryImage) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, catalogOpts); diff != "" {
		t.Fatalf("image %s mismatch (-want +got):\n%s", expected.Path, diff)
	}
}

func assertNoDuplicatePaths(t *rapid.T, c catalog.Catalog) {
	t.Helper()
	paths := make(map[string]bool)
	for _, img := range c.Images {
		if paths[img.Path] {
			t.Fatalf("duplicate image path found: %s", img.Path)
		}
		paths[img.Path] = true
	}
}

func assertNoDuplicateCollections(t *rapid.T, c catalog.Catalog) {
	t.Helper()
	ids := make(map[string]bool)
	for _, col := range c.Collections {
		if ids[col.ID] {
			t.Fatalf("duplicate collection id found: %s", col.ID)
		}
		ids[col.ID] = true
	}
}

func imagePaths(c catalog.Catalog) []string {
	paths := make([]string, len(c.Images))
	for i, img := range c.Images {
		paths[i] = img.Path
	}
	return paths
}
