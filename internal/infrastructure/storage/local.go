package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/google/uuid"
)

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// LocalStorage persists uploaded images on the local filesystem under a single
// directory, using generated names so uploads can never collide or escape it.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory %s: %w", dir, err)
	}

	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", errs.ErrNotAnImage
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filename, nil
}

func (s *LocalStorage) Remove(filename string) error {
	// filepath.Base guards against any path component smuggled into a
	// stored filename.
	return os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}
