package provider

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskImageStore writes generated images to a directory served at urlPrefix
type DiskImageStore struct {
	dir       string
	urlPrefix string
}

// NewDiskImageStore creates the directory if needed
func NewDiskImageStore(dir, urlPrefix string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}
	return &DiskImageStore{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

// Dir is the directory images are written to
func (s *DiskImageStore) Dir() string {
	return s.dir
}

// Save writes data under a fresh name and returns its public URL
func (s *DiskImageStore) Save(data []byte, mimeType string) (string, error) {
	name := uuid.NewString() + extensionFor(mimeType)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return s.urlPrefix + "/" + name, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
