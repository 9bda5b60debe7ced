package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msarvarov/vendor-market/internal/logger"
)

func newTestImageStorage(t *testing.T) ImageStorage {
	t.Helper()
	storage, err := NewImageFileStorage(t.TempDir(), logger.Nop())
	if err != nil {
		t.Fatalf("failed to create image storage: %v", err)
	}
	return storage
}

func TestNewImageFileStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")

	_, err := NewImageFileStorage(dir, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("uploads directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestSaveImage_RoundTrip(t *testing.T) {
	storage := newTestImageStorage(t)

	content := "fake image bytes"
	if err := storage.SaveImage("firm.png", strings.NewReader(content)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := storage.ImagePath("firm.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved image: %v", err)
	}
	if string(data) != content {
		t.Errorf("expected content %q, got %q", content, string(data))
	}
}

func TestSaveImage_InvalidNames(t *testing.T) {
	storage := newTestImageStorage(t)

	tests := []struct {
		name     string
		fileName string
	}{
		{name: "empty", fileName: ""},
		{name: "slash", fileName: "dir/file.png"},
		{name: "backslash", fileName: `dir\file.png`},
		{name: "parent traversal", fileName: "../escape.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storage.SaveImage(tt.fileName, strings.NewReader("x"))
			if !errors.Is(err, ErrInvalidImageName) {
				t.Errorf("expected ErrInvalidImageName, got: %v", err)
			}
		})
	}
}

func TestImagePath_NotFound(t *testing.T) {
	storage := newTestImageStorage(t)

	_, err := storage.ImagePath("missing.png")
	if !errors.Is(err, ErrImageNotFound) {
		t.Errorf("expected ErrImageNotFound, got: %v", err)
	}
}

func TestImagePath_RejectsTraversal(t *testing.T) {
	storage := newTestImageStorage(t)

	_, err := storage.ImagePath("../../etc/passwd")
	if !errors.Is(err, ErrInvalidImageName) {
		t.Errorf("expected ErrInvalidImageName, got: %v", err)
	}
}
