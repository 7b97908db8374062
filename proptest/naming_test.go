package proptest

import (
	"gallery/internal/catalog"
	"path"
	"path/filepath"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_RelativePathOf_Idempotent(t *testing.T) {
	RunBasic(t, func(h *Harness) {
		rel := imagePathGen([]string{"kuku", "trips/2024"}).Draw(h.T, "rel")
		abs := filepath.Join(h.Dir, filepath.FromSlash(rel))

		once := catalog.RelativePathOf(h.Dir, abs)
		twice := catalog.RelativePathOf(h.Dir, once)

		if once != rel {
			h.T.Fatalf("RelativePathOf(%q) = %q, want %q", abs, once, rel)
		}
		if twice != once {
			h.T.Fatalf("not idempotent: %q then %q", once, twice)
		}
	})
}

func TestProperty_CaptionFor_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		segment := rapid.StringMatching(`[a-zA-Z0-9 _.-]{0,20}`).Draw(t, "segment")

		once := catalog.CaptionFor(segment)

		if twice := catalog.CaptionFor(once); twice != once {
			t.Fatalf("CaptionFor(%q) = %q but CaptionFor(%q) = %q", segment, once, once, twice)
		}
	})
}

func TestProperty_DeriveCollections_CoversEveryImage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		scanned := scannedCatalogGen().Draw(t, "scanned")

		collections := catalog.DeriveCollections("", imagePaths(scanned))

		assertNoDuplicateCollections(t, catalog.Catalog{Collections: collections})
		for _, img := range scanned.Images {
			dir := path.Dir(img.Path)
			found := slices.ContainsFunc(collections, func(c catalog.Collection) bool { return c.ID == dir })
			if dir == "." && found {
				t.Fatalf("root image %s produced a collection", img.Path)
			}
			if dir != "." && !found {
				t.Fatalf("no collection derived for %s", img.Path)
			}
		}
	})
}
