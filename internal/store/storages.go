package store

import (
	"context"
	"fmt"

	"github.com/msarvarov/vendor-market/internal/config"
	"github.com/msarvarov/vendor-market/internal/logger"
)

// Storages aggregates every persistence backend used by the services.
type Storages struct {
	VendorRepository  VendorRepository
	FirmRepository    FirmRepository
	ProductRepository ProductRepository
	ImageStorage      ImageStorage
}

// NewStorages connects to PostgreSQL, applies the embedded migrations,
// prepares the uploads directory, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	imageStorage, err := NewImageFileStorage(cfg.Files.UploadsDir, log)
	if err != nil {
		return nil, fmt.Errorf("error creating image storage: %w", err)
	}

	return &Storages{
		VendorRepository:  NewVendorRepository(db, log),
		FirmRepository:    NewFirmRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
		ImageStorage:      imageStorage,
	}, nil
}
