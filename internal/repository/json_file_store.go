package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// fileLocks maps an absolute store path to its *sync.Mutex so every store
// instance on the same file serializes its read-modify-write cycles.
var fileLocks sync.Map

func lockFor(path string) *sync.Mutex {
	mu, _ := fileLocks.LoadOrStore(path, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// JSONFileStore is an append-only list of T persisted as a JSON array.
type JSONFileStore[T any] struct {
	path string
	mu   *sync.Mutex
}

// NewJSONFileStore opens the store at path, creating the file (and its
// directory) holding an empty array when it does not exist yet.
func NewJSONFileStore[T any](path string) (*JSONFileStore[T], error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve store path %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	s := &JSONFileStore[T]{path: abs, mu: lockFor(abs)}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(abs); errors.Is(err, fs.ErrNotExist) {
		if err := writeFileAtomic(abs, []byte("[]")); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat store %s: %w", abs, err)
	}
	return s, nil
}

// Path returns the absolute file path backing the store.
func (s *JSONFileStore[T]) Path() string {
	return s.path
}

// ReadAll returns every stored item in insertion order.
func (s *JSONFileStore[T]) ReadAll() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

// Append adds item to the end of the list.
func (s *JSONFileStore[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.readLocked()
	if err != nil {
		return err
	}
	items = append(items, item)

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store %s: %w", s.path, err)
	}
	return writeFileAtomic(s.path, data)
}

func (s *JSONFileStore[T]) readLocked() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read store %s: %w", s.path, err)
	}
	items := []T{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode store %s: %w", s.path, err)
	}
	return items, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file for %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file for %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
