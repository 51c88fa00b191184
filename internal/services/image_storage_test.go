package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"watchstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalImageStorage_Upload(t *testing.T) {
	dir := t.TempDir()
	storage := services.NewLocalImageStorage(dir, "http://localhost:8080/uploads/")

	url, err := storage.Upload(context.Background(), "products/p1/a.jpg", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/products/p1/a.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "products", "p1", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))

	// Paths cannot climb out of the storage directory.
	url, err = storage.Upload(context.Background(), "../../escape.jpg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/escape.jpg", url)
	_, err = os.Stat(filepath.Join(dir, "escape.jpg"))
	assert.NoError(t, err)
}

// failingReader yields some bytes and then fails.
type failingReader struct{ sent bool }

func (r *failingReader) Read(p []byte) (int, error) {
	if r.sent {
		return 0, errors.New("connection reset")
	}
	r.sent = true
	return copy(p, "partial"), nil
}

func TestLocalImageStorage_UploadFailureRemovesFile(t *testing.T) {
	dir := t.TempDir()
	storage := services.NewLocalImageStorage(dir, "/uploads")

	t.Run("read error", func(t *testing.T) {
		_, err := storage.Upload(context.Background(), "products/p1/broken.jpg", &failingReader{})
		assert.ErrorContains(t, err, "connection reset")
		_, statErr := os.Stat(filepath.Join(dir, "products", "p1", "broken.jpg"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := storage.Upload(ctx, "products/p1/late.jpg", strings.NewReader("img"))
		assert.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(filepath.Join(dir, "products", "p1", "late.jpg"))
		assert.True(t, os.IsNotExist(statErr))
	})
}
