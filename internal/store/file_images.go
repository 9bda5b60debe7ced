package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/msarvarov/vendor-market/internal/logger"
)

// imageFileStorage is the local-filesystem implementation of
// [ImageStorage]. Uploaded firm and product images are written under a
// single uploads directory and later served by name, so file names are
// validated against path traversal before any filesystem access.
type imageFileStorage struct {
	uploadsDir string
	logger     *logger.Logger
}

// NewImageFileStorage constructs an [ImageStorage] rooted at uploadsDir,
// creating the directory if it does not yet exist.
func NewImageFileStorage(uploadsDir string, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	logger.Debug().Str("dir", uploadsDir).Msg("creating image file storage")
	return &imageFileStorage{
		uploadsDir: uploadsDir,
		logger:     logger,
	}, nil
}

// SaveImage writes content to a file named fileName inside the uploads
// directory. An existing file of the same name is overwritten; callers
// are expected to generate unique names.
func (s *imageFileStorage) SaveImage(fileName string, content io.Reader) error {
	if err := validateImageName(fileName); err != nil {
		return err
	}

	file, err := os.Create(filepath.Join(s.uploadsDir, fileName))
	if err != nil {
		return fmt.Errorf("error creating image file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return fmt.Errorf("error writing image file: %w", err)
	}

	return nil
}

// ImagePath resolves fileName to the on-disk path inside the uploads
// directory. Returns [ErrImageNotFound] when the file does not exist and
// [ErrInvalidImageName] when the name would escape the directory.
func (s *imageFileStorage) ImagePath(fileName string) (string, error) {
	if err := validateImageName(fileName); err != nil {
		return "", err
	}

	path := filepath.Join(s.uploadsDir, fileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrImageNotFound
		}
		return "", fmt.Errorf("error reading image file: %w", err)
	}

	return path, nil
}

// validateImageName rejects names that are empty, contain path
// separators, or reference the parent directory.
func validateImageName(fileName string) error {
	if fileName == "" ||
		strings.ContainsAny(fileName, `/\`) ||
		strings.Contains(fileName, "..") {
		return ErrInvalidImageName
	}
	return nil
}
