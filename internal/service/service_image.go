package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/msarvarov/vendor-market/internal/logger"
	"github.com/msarvarov/vendor-market/internal/store"
	"github.com/msarvarov/vendor-market/internal/utils"
)

// imageService is the concrete implementation of ImageService. Uploaded
// files are renamed to a generated UUID plus the original extension, so
// two vendors uploading "logo.png" never collide.
type imageService struct {
	imageStorage  store.ImageStorage
	uuidGenerator *utils.UUIDGenerator
	logger        *logger.Logger
}

// NewImageService constructs an ImageService backed by the given ImageStorage.
func NewImageService(imageStorage store.ImageStorage, logger *logger.Logger) ImageService {
	return &imageService{
		imageStorage:  imageStorage,
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// SaveImage stores content under a generated name, keeping the extension
// of originalName, and returns the stored name for persisting alongside
// the owning firm or product.
func (s *imageService) SaveImage(ctx context.Context, originalName string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	fileName := s.uuidGenerator.Generate() + filepath.Ext(originalName)

	if err := s.imageStorage.SaveImage(fileName, content); err != nil {
		log.Err(err).Str("file_name", fileName).Msg("image saving ended with error")
		return "", fmt.Errorf("image saving ended with error: %w", err)
	}

	return fileName, nil
}

// ImagePath resolves a stored image name to its servable file path.
//
// Returns store.ErrImageNotFound and store.ErrInvalidImageName unchanged
// so the handler layer can map them to 404.
func (s *imageService) ImagePath(ctx context.Context, fileName string) (string, error) {
	log := logger.FromContext(ctx)

	path, err := s.imageStorage.ImagePath(fileName)
	if err != nil {
		if errors.Is(err, store.ErrImageNotFound) || errors.Is(err, store.ErrInvalidImageName) {
			return "", err
		}
		log.Err(err).Str("file_name", fileName).Msg("image lookup failed")
		return "", fmt.Errorf("image lookup failed: %w", err)
	}

	return path, nil
}
