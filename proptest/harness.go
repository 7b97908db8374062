package proptest

import (
	"gallery/internal/catalog"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

type Harness struct {
	T   *rapid.T
	Dir string
}

// CatalogPath is a fresh catalog location inside the iteration directory.
func (h *Harness) CatalogPath() string {
	return filepath.Join(h.Dir, "gallery.yaml")
}

func (h *Harness) WriteFile(name, content string) string {
	p := filepath.Join(h.Dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		h.T.Fatalf("failed to write %s: %v", name, err)
	}
	return p
}

type StoreHarness struct {
	Harness
	Store *catalog.YAMLStore
}

func (h *StoreHarness) MustPersist(c catalog.Catalog) string {
	p := h.CatalogPath()
	if err := h.Store.Persist(p, c); err != nil {
		h.T.Fatalf("failed to persist: %v", err)
	}
	return p
}

func (h *StoreHarness) MustLoad(p string) catalog.Catalog {
	c, err := h.Store.Load(p)
	if err != nil {
		h.T.Fatalf("failed to load: %v", err)
	}
	return c
}

func newIterDir(rt *rapid.T, tempDir string) string {
	iterDir, err := os.MkdirTemp(tempDir, iterDirGen.Draw(rt, "iterDir")+"-")
	if err != nil {
		rt.Fatalf("failed to create iter dir: %v", err)
	}
	return iterDir
}

func RunWithStore(t *testing.T, fn func(h *StoreHarness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		harness := &StoreHarness{
			Harness: Harness{
				T:   rt,
				Dir: newIterDir(rt, tempDir),
			},
			Store: catalog.NewYAMLStore(),
		}

		fn(harness)
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		harness := &Harness{
			T:   rt,
			Dir: newIterDir(rt, tempDir),
		}

		fn(harness)
	})
}
