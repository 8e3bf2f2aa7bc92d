package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStorageService persists uploaded comment images. The rest of the
// system only ever holds the opaque filename it returns.
type FileStorageService interface {
	Store(file *multipart.FileHeader) (string, error)
	Delete(filename string) error
}

type fileStorageService struct {
	dir string
}

func NewFileStorageService(dir string) (FileStorageService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &fileStorageService{dir: dir}, nil
}

// Store writes the upload under a fresh uuid-based name and returns it.
func (s *fileStorageService) Store(file *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write stored file: %w", err)
	}
	return name, nil
}

// Delete removes a stored file. Absent files are ignored; names that try to
// escape the upload dir are rejected.
func (s *fileStorageService) Delete(filename string) error {
	if filename != filepath.Base(filename) {
		return fmt.Errorf("invalid stored filename %q", filename)
	}

	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete stored file: %w", err)
	}
	return nil
}
