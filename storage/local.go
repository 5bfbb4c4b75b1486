package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is where main mounts the upload directory.
const URLPrefix = "/uploads/"

// LocalStore writes images under a directory served statically at URLPrefix.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(ctx context.Context, folder string, fileHeader *multipart.FileHeader) (string, error) {
	ext, err := CheckImage(fileHeader)
	if err != nil {
		return "", err
	}

	uploadDir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return URLPrefix + path.Join(folder, filename), nil
}

// Delete removes a file previously returned by Save. Missing files are not an error.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, URLPrefix)
	if !ok {
		return fmt.Errorf("not a local upload: %s", url)
	}

	target := filepath.Join(s.dir, filepath.FromSlash(path.Clean("/"+rel)))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
