package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ImageStorage stores uploaded images and returns the URL they are served from.
type ImageStorage interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// LocalImageStorage writes images below a directory that the HTTP server exposes
// under a public base URL.
type LocalImageStorage struct {
	dir     string
	baseURL string
}

// NewLocalImageStorage creates a LocalImageStorage rooted at dir.
func NewLocalImageStorage(dir, baseURL string) *LocalImageStorage {
	return &LocalImageStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload writes r to name, a slash separated path relative to the storage root.
func (s *LocalImageStorage) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	clean := path.Clean("/" + name)[1:]
	if clean == "" {
		return "", fmt.Errorf("empty image name")
	}

	target := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create image directory: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	_, err = io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		// Partial files are never served.
		if rmErr := os.Remove(target); rmErr != nil {
			log.Printf("Error removing partial image %s: %v", target, rmErr)
		}
		return "", fmt.Errorf("write image: %w", err)
	}
	return s.baseURL + "/" + clean, nil
}
