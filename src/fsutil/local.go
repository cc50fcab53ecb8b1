package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileStore implements FileStore using the local filesystem
type LocalFileStore struct {
}

// NewLocalFileStore creates a new LocalFileStore
func NewLocalFileStore() FileStore {
	return &LocalFileStore{}
}

func (s *LocalFileStore) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (s *LocalFileStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *LocalFileStore) FindByExtensions(root string, exts []string) ([]string, error) {
	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[strings.ToLower(ext)] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if wanted[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
