package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage stores blobs as plain files in a single directory.
// Default backend; matches the layout of a classic uploads/ folder.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(name string, file io.Reader) error {
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	_, err = io.Copy(dst, file)
	if err != nil {
		dst.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}

	return dst.Close()
}

func (s *LocalStorage) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func (s *LocalStorage) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
