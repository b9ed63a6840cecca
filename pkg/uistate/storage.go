package uistate

import (
	"os"
	"path/filepath"
)

// FileStorage keeps each key as a JSON file under a directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStorage) Read(key string) ([]byte, error) {
	return os.ReadFile(f.path(key))
}

func (f *FileStorage) Write(key string, data []byte) error {
	return os.WriteFile(f.path(key), data, 0o600)
}
