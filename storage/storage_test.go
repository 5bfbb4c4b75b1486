package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart header the same way gin receives one.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(MaxFileSize))
	return req.MultipartForm.File["image"][0]
}

func TestCheckImage(t *testing.T) {
	ext, err := CheckImage(&multipart.FileHeader{Filename: "Poster.JPG", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, ".jpg", ext)

	_, err = CheckImage(&multipart.FileHeader{Filename: "notes.pdf", Size: 10})
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = CheckImage(&multipart.FileHeader{Filename: "huge.png", Size: MaxFileSize + 1})
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestLocalStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	url, err := store.Save(context.Background(), "events", fileHeader(t, "poster.png", []byte("png-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/events/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	onDisk := filepath.Join(dir, "events", filepath.Base(url))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete(context.Background(), url))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// already gone
	require.NoError(t, store.Delete(context.Background(), url))
}

func TestLocalStoreDeleteStaysInsideDir(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(filepath.Dir(dir), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0644))
	t.Cleanup(func() { os.Remove(outside) })

	require.NoError(t, NewLocalStore(dir).Delete(context.Background(), "/uploads/../keep.txt"))
	_, err := os.Stat(outside)
	assert.NoError(t, err)
}

func TestLocalStoreRejectsForeignURL(t *testing.T) {
	err := NewLocalStore(t.TempDir()).Delete(context.Background(), "https://res.cloudinary.com/x.png")
	assert.Error(t, err)
}

func TestExtractPublicID(t *testing.T) {
	id, err := extractPublicID("https://res.cloudinary.com/demo/image/upload/v1234567890/events/abc123.jpg")
	require.NoError(t, err)
	assert.Equal(t, "events/abc123", id)

	id, err = extractPublicID("https://res.cloudinary.com/demo/image/upload/announcements/banner.png")
	require.NoError(t, err)
	assert.Equal(t, "announcements/banner", id)

	_, err = extractPublicID("https://example.com/no-upload-segment.png")
	assert.Error(t, err)
}
