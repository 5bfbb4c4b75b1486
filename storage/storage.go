package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const MaxFileSize = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ErrInvalidImage is returned for uploads that fail the size or format checks.
var ErrInvalidImage = errors.New("invalid image")

// ImageStore persists uploaded images and returns the URL clients should use.
type ImageStore interface {
	Save(ctx context.Context, folder string, fileHeader *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, url string) error
}

// CheckImage applies the size and extension limits shared by every store.
func CheckImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxFileSize {
		return "", fmt.Errorf("%w: file %s exceeds the 5MB limit", ErrInvalidImage, fileHeader.Filename)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: file %s must be JPG, PNG or WEBP", ErrInvalidImage, fileHeader.Filename)
	}
	return ext, nil
}
