package proptest

import (
	"fmt"
	"gallery/internal/catalog"
	"path"
	"slices"

	"pgregory.net/rapid"
)

const (
	maxCollections = 5
	maxImages      = 12
)

var (
	segmentGen = rapid.StringMatching(`[a-z][a-z0-9-]{0,7}`)
	iterDirGen = rapid.StringMatching(`[a-z]{8}`)
	extGen     = rapid.SampledFrom([]string{"jpg", "jpeg", "png", "gif", "JPG"})
	textGen    = rapid.StringMatching(`[A-Za-z][A-Za-z ,.'-]{0,30}`)
)

func collectionIDGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		depth := rapid.IntRange(1, 2).Draw(t, "depth")
		segments := make([]string, depth)
		for i := range segments {
			segments[i] = segmentGen.Draw(t, "segment")
		}
		return path.Join(segments...)
	})
}

// imagePathGen draws a file name inside one of dirs, or at the root when
// dirs is empty or the draw says so.
func imagePathGen(dirs []string) *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		name := segmentGen.Draw(t, "name") + "." + extGen.Draw(t, "ext")
		if len(dirs) == 0 || rapid.Bool().Draw(t, "atRoot") {
			return name
		}
		return path.Join(rapid.SampledFrom(dirs).Draw(t, "dir"), name)
	})
}

// validCatalogGen draws a catalog whose images only reference declared or
// virtual collections. Image paths and collection ids are unique.
func validCatalogGen() *rapid.Generator[catalog.Catalog] {
	return rapid.Custom(func(t *rapid.T) catalog.Catalog {
		ids := rapid.SliceOfNDistinct(collectionIDGen(), 0, maxCollections, rapid.ID[string]).Draw(t, "collectionIDs")
		c := catalog.NullCatalog()
		for _, id := range ids {
			c.Collections = append(c.Collections, catalog.Collection{ID: id, Name: catalog.CaptionFor(path.Base(id))})
		}

		paths := rapid.SliceOfNDistinct(imagePathGen(ids), 0, maxImages, rapid.ID[string]).Draw(t, "imagePaths")
		refs := slices.Concat(ids, catalog.VirtualCollections)
		for _, p := range paths {
			c.Images = append(c.Images, catalog.GalleryImage{
				Path: p,
				Meta: catalog.Meta{
					Title:       textGen.Draw(t, "title"),
					Description: rapid.OneOf(rapid.Just(""), textGen).Draw(t, "description"),
					Collections: rapid.SliceOfNDistinct(rapid.SampledFrom(refs), 0, len(refs), rapid.ID[string]).Draw(t, "refs"),
				},
			})
		}
		return c
	})
}

// scannedCatalogGen draws a catalog shaped like a fresh scan: titles and
// collections derived from the paths, empty descriptions.
func scannedCatalogGen() *rapid.Generator[catalog.Catalog] {
	return rapid.Custom(func(t *rapid.T) catalog.Catalog {
		dirs := rapid.SliceOfNDistinct(collectionIDGen(), 0, maxCollections, rapid.ID[string]).Draw(t, "dirs")
		paths := rapid.SliceOfNDistinct(imagePathGen(dirs), 0, maxImages, rapid.ID[string]).Draw(t, "paths")
		return scanOf(paths)
	})
}

func scanOf(paths []string) catalog.Catalog {
	c := catalog.NullCatalog()
	for _, p := range paths {
		c.Images = append(c.Images, catalog.GalleryImage{
			Path: p,
			Meta: catalog.Meta{
				Title:       catalog.TitleFor(p),
				Collections: catalog.CollectionIDFor(p),
			},
		})
	}
	c.Collections = catalog.DeriveCollections("", paths)
	return c
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("images: [unclosed"),
		rapid.Just("collections: {unclosed"),
		rapid.Just("- item\n  bad indent"),
		rapid.Just("\t\ttabs: everywhere"),
		rapid.Just("images:\n  - path: \"unmatched quote"),
		rapid.Just("images:\n  - path: a.jpg\n  meta: value"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

func missingFieldsGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("collections:\n  - name: Kuku\nimages: []\n"),
		rapid.Just("collections: []\nimages:\n  - meta:\n      title: Kuku Trees\n"),
		rapid.Just("collections: []\nimages:\n  - {}\n"),
		rapid.Just("collections:\n  - {}\nimages: []\n"),
		rapid.Just("images:\n  - path: \"\"\n    meta:\n      title: Empty\n"),
	)
}

func extraFieldsGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		extraField := rapid.SampledFrom([]string{
			"unknown_field",
			"extra",
			"foo",
			"bar_baz",
			"randomField123",
		}).Draw(t, "fieldName")
		extraValue := rapid.SampledFrom([]string{
			"string_value",
			"123",
			"true",
			"[1, 2, 3]",
			"{nested: value}",
		}).Draw(t, "fieldValue")

		return fmt.Sprintf(`%s: %s
collections:
  - id: kuku
    name: Kuku
    %s: %s
images:
  - path: kuku/kuku-trees.jpg
    %s: %s
    meta:
      title: Kuku Trees
      description: ""
      collections:
        - kuku
`, extraField, extraValue, extraField, extraValue, extraField, extraValue)
	})
}

func invalidTypesGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(`collections: "not a list"
images: []
`),
		rapid.Just(`collections: []
images:
  - path: [not, a, string]
`),
		rapid.Just(`collections: []
images:
  - path: a.jpg
    meta:
      collections: {kuku: true}
`),
		rapid.Just(`collections:
  - id: {nested: map}
images: []
`),
	)
}
