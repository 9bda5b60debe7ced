package service

import (
	"github.com/msarvarov/vendor-market/internal/config"
	"github.com/msarvarov/vendor-market/internal/logger"
	"github.com/msarvarov/vendor-market/internal/store"
)

type Services struct {
	AuthService    AuthService
	FirmService    FirmService
	ProductService ProductService
	ImageService   ImageService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.VendorRepository, cfg.App, logger),
		FirmService:    NewFirmService(storages.FirmRepository, storages.VendorRepository, logger),
		ProductService: NewProductService(storages.ProductRepository, storages.FirmRepository, logger),
		ImageService:   NewImageService(storages.ImageStorage, logger),
	}
}
