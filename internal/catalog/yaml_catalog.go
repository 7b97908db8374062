package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type Store interface {
	Load(path string) (Catalog, error)
	LoadOrEmpty(path string) (Catalog, error)
	Persist(path string, c Catalog) error
}

// LoadError reports a catalog file that is missing, unreadable or does not
// match the catalog schema.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load catalog %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// YAMLStore reads and writes catalog files. Calls on one store are
// serialized; separate processes writing the same file are not coordinated.
type YAMLStore struct {
	mu sync.Mutex
}

func NewYAMLStore() *YAMLStore {
	return &YAMLStore{}
}

func (s *YAMLStore) Load(path string) (Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadUnlocked(path)
}

func (s *YAMLStore) LoadOrEmpty(path string) (Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.loadUnlocked(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NullCatalog(), nil
	}
	return c, err
}

func (s *YAMLStore) loadUnlocked(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, &LoadError{Path: path, Err: err}
	}

	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, &LoadError{Path: path, Err: fmt.Errorf("parse: %w", err)}
	}

	if err := checkSchema(file); err != nil {
		return Catalog{}, &LoadError{Path: path, Err: err}
	}

	return file.Clone(), nil
}

func checkSchema(c Catalog) error {
	for i, col := range c.Collections {
		if col.ID == "" {
			return fmt.Errorf("collection #%d: %w", i+1, ErrEmptyCollectionID)
		}
	}
	for i, img := range c.Images {
		if img.Path == "" {
			return fmt.Errorf("image #%d: %w", i+1, ErrEmptyImagePath)
		}
	}
	return nil
}

// Persist writes c to path through a temporary file and a rename, so readers
// see either the old or the new catalog. Parent directories are created.
func (s *YAMLStore) Persist(path string, c Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := Encode(c)
	if err != nil {
		return fmt.Errorf("encode catalog %q: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	tmpPath := path + "." + uuid.NewString() + ".tmp"
	if err := writeSynced(tmpPath, data); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write catalog %q: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace catalog %q: %w", path, err)
	}
	return nil
}

// writeSynced writes data to a new file and flushes it to disk before
// returning, so a later rename never exposes an empty file.
func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode renders c in the canonical on-disk form.
func Encode(c Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c.Clone()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
