// Package storagefile is a StateStore adapter backed by JSON files on
// disk, standing in for the browser's durable storage: one file per
// record name inside a dedicated directory.
package storagefile

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hcml/assetconsole/core"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

var _ core.StateStore = (*Store)(nil)

// New creates the storage directory if needed and returns the adapter.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// path maps a record name onto a file, flattening separators so a record
// name can never escape the storage directory.
func (s *Store) path(name string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(name)
	return filepath.Join(s.dir, safe+".json")
}

func (s *Store) Get(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrRecordNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Store) Set(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Write-then-rename keeps a crashed write from corrupting the record.
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(name))
}

func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return core.ErrRecordNotFound
	}
	return err
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
