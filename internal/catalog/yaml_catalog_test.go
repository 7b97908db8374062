package catalog_test

import (
	"gallery/internal/catalog"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() catalog.Catalog {
	featured := newImage("kuku/kuku-trees.jpg", "Kuku Trees", "kuku", catalog.FeaturedCollectionID)
	featured.Meta.Description = "Taken at dawn"
	return catalog.Catalog{
		Collections: []catalog.Collection{
			{ID: "kuku", Name: "Kuku"},
			{ID: "popo", Name: "Popo"},
		},
		Images: []catalog.GalleryImage{
			featured,
			newImage("popo/popo-view.jpg", "Popo View", "popo"),
			newImage("landscape.jpg", "Landscape"),
		},
	}
}

func TestYAMLStore_PersistAndLoad(t *testing.T) {
	t.Run("round trips a catalog", func(t *testing.T) {
		store := catalog.NewYAMLStore()
		path := filepath.Join(t.TempDir(), "gallery.yaml")
		want := sampleCatalog()

		require.NoError(t, store.Persist(path, want))
		got, err := store.Load(path)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("persisting the same catalog twice is byte identical", func(t *testing.T) {
		store := catalog.NewYAMLStore()
		path := filepath.Join(t.TempDir(), "gallery.yaml")

		require.NoError(t, store.Persist(path, sampleCatalog()))
		first, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, store.Persist(path, sampleCatalog()))
		second, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		store := catalog.NewYAMLStore()
		path := filepath.Join(t.TempDir(), "nested", "deeper", "gallery.yaml")

		require.NoError(t, store.Persist(path, catalog.NullCatalog()))

		assert.FileExists(t, path)
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		store := catalog.NewYAMLStore()
		dir := t.TempDir()

		require.NoError(t, store.Persist(filepath.Join(dir, "gallery.yaml"), sampleCatalog()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "gallery.yaml", entries[0].Name())
	})

	t.Run("does not persist capture metadata", func(t *testing.T) {
		store := catalog.NewYAMLStore()
		path := filepath.Join(t.TempDir(), "gallery.yaml")
		c := sampleCatalog()
		model := "X100V"
		c.Images[0].Meta.Capture.CameraModel = &model

		require.NoError(t, store.Persist(path, c))
		got, err := store.Load(path)

		require.NoError(t, err)
		assert.True(t, got.Images[0].Meta.Capture.IsEmpty())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "X100V")
	})

	t.Run("concurrent persists keep the file loadable", func(t *testing.T) {
		store := catalog.NewYAMLStore()
		path := filepath.Join(t.TempDir(), "gallery.yaml")

		var wg sync.WaitGroup
		for range 20 {
			wg.Go(func() {
				assert.NoError(t, store.Persist(path, sampleCatalog()))
			})
		}
		wg.Wait()

		got, err := store.Load(path)
		require.NoError(t, err)
		assert.Equal(t, sampleCatalog(), got)
	})
}

func TestYAMLStore_Load(t *testing.T) {
	t.Run("missing file is a load error", func(t *testing.T) {
		store := catalog.NewYAMLStore()
		path := filepath.Join(t.TempDir(), "missing.yaml")

		_, err := store.Load(path)

		var lerr *catalog.LoadError
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, path, lerr.Path)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed yaml is a load error", func(t *testing.T) {
		path := writeCatalogFile(t, "collections: [unclosed\n")

		_, err := catalog.NewYAMLStore().Load(path)

		var lerr *catalog.LoadError
		assert.ErrorAs(t, err, &lerr)
	})

	t.Run("wrong field type is a load error", func(t *testing.T) {
		path := writeCatalogFile(t, "images:\n  - path: a.jpg\n    meta:\n      collections: nope\n")

		_, err := catalog.NewYAMLStore().Load(path)

		var lerr *catalog.LoadError
		assert.ErrorAs(t, err, &lerr)
	})

	t.Run("image without path is a load error", func(t *testing.T) {
		path := writeCatalogFile(t, "images:\n  - meta:\n      title: Orphan\n")

		_, err := catalog.NewYAMLStore().Load(path)

		assert.ErrorIs(t, err, catalog.ErrEmptyImagePath)
	})

	t.Run("collection without id is a load error", func(t *testing.T) {
		path := writeCatalogFile(t, "collections:\n  - name: Nameless\n")

		_, err := catalog.NewYAMLStore().Load(path)

		assert.ErrorIs(t, err, catalog.ErrEmptyCollectionID)
	})

	t.Run("empty file is an empty catalog", func(t *testing.T) {
		path := writeCatalogFile(t, "")

		got, err := catalog.NewYAMLStore().Load(path)

		require.NoError(t, err)
		assert.Equal(t, catalog.NullCatalog(), got)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		path := writeCatalogFile(t, "version: 2\nimages:\n  - path: a.jpg\n    extra: true\n")

		got, err := catalog.NewYAMLStore().Load(path)

		require.NoError(t, err)
		require.Len(t, got.Images, 1)
		assert.Equal(t, []string{}, got.Images[0].Meta.Collections)
	})
}

func TestYAMLStore_LoadOrEmpty(t *testing.T) {
	t.Run("missing file yields the null catalog", func(t *testing.T) {
		got, err := catalog.NewYAMLStore().LoadOrEmpty(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, catalog.NullCatalog(), got)
	})

	t.Run("malformed file is still an error", func(t *testing.T) {
		path := writeCatalogFile(t, ":\n  - [")

		_, err := catalog.NewYAMLStore().LoadOrEmpty(path)

		assert.Error(t, err)
	})
}

func TestEncode(t *testing.T) {
	t.Run("writes every documented key", func(t *testing.T) {
		data, err := catalog.Encode(sampleCatalog())

		require.NoError(t, err)
		out := string(data)
		for _, key := range []string{"collections:", "images:", "id: kuku", "name: Kuku", "path: landscape.jpg", "title: Landscape", "description: Taken at dawn"} {
			assert.Contains(t, out, key)
		}
	})

	t.Run("null catalog encodes empty lists", func(t *testing.T) {
		data, err := catalog.Encode(catalog.Catalog{})

		require.NoError(t, err)
		assert.Equal(t, "collections: []\nimages: []\n", string(data))
	})
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
