package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// ImageStore manages the directory of uploaded food images. Filenames are
// sanitized before any filesystem access; stored names never contain path
// separators or traversal sequences.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image directory: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

func (store *ImageStore) Dir() string {
	return store.dir
}

// SanitizeFilename reduces an uploaded filename to a safe base name. Path
// separators, traversal sequences and control characters are stripped; an
// empty result means the upload must be rejected.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.Clean("/" + name))

	var builder strings.Builder
	for _, char := range name {
		switch {
		case char >= 'a' && char <= 'z', char >= 'A' && char <= 'Z', char >= '0' && char <= '9':
			builder.WriteRune(char)
		case char == '.', char == '-', char == '_':
			builder.WriteRune(char)
		default:
			builder.WriteRune('_')
		}
	}

	cleaned := strings.Trim(builder.String(), "._")
	if cleaned == "" || cleaned == "/" {
		return ""
	}
	return cleaned
}

// Save writes the uploaded file under its sanitized name and returns that
// name. A colliding name overwrites the existing file.
func (store *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	filename := SanitizeFilename(file.Filename)
	if filename == "" {
		return "", ErrInvalidInput
	}

	source, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer source.Close()

	target, err := os.Create(filepath.Join(store.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer target.Close()

	if _, err := io.Copy(target, source); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return filename, nil
}

// Remove deletes a stored image. A missing file is not an error.
func (store *ImageStore) Remove(filename string) error {
	filename = SanitizeFilename(filename)
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(store.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists reports whether a stored image file is present on disk.
func (store *ImageStore) Exists(filename string) bool {
	filename = SanitizeFilename(filename)
	if filename == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(store.dir, filename))
	return err == nil
}
