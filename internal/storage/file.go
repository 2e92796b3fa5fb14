package storage

import (
	"fmt"
	"os"
	"path/filepath"

	inErrors "github.com/azgaming/storefront/internal/errors"
)

// FileStore keeps one JSON file per key under a data directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed creating storage directory=%s with error=%w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, inErrors.ErrNoItem
		}
		return nil, fmt.Errorf("failed reading blob key=%s with error=%w", key, err)
	}
	return raw, nil
}

// Set writes through a temp file and renames so a crashed write never
// leaves a half-written blob behind.
func (s *FileStore) Set(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed creating temp file for key=%s with error=%w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("failed writing blob key=%s with error=%w", key, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed closing temp file for key=%s with error=%w", key, err)
	}
	if err = os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("failed renaming temp file for key=%s with error=%w", key, err)
	}
	return nil
}

func (s *FileStore) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed removing blob key=%s with error=%w", key, err)
	}
	return nil
}
