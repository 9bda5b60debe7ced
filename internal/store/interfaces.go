package store

import (
	"context"
	"io"

	"github.com/msarvarov/vendor-market/models"
)

// VendorRepository persists vendor accounts. It owns Identity records
// exclusively; callers never cache them across requests.
type VendorRepository interface {
	CreateVendor(ctx context.Context, vendor models.Vendor) (models.Vendor, error)
	FindVendorByEmail(ctx context.Context, email string) (models.Vendor, error)
	GetAllVendors(ctx context.Context) ([]models.Vendor, error)
	GetVendorByID(ctx context.Context, vendorID int64) (models.Vendor, error)
}

// FirmRepository persists firms.
type FirmRepository interface {
	CreateFirm(ctx context.Context, firm models.Firm) (models.Firm, error)
	GetFirmByID(ctx context.Context, firmID int64) (models.Firm, error)
	DeleteFirm(ctx context.Context, firmID int64) error
}

// ProductRepository persists products.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProductsByFirm(ctx context.Context, firmID int64, filter models.ProductFilter) ([]models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// ImageStorage persists uploaded firm and product images on the local
// file system and reads them back for serving.
type ImageStorage interface {
	SaveImage(fileName string, content io.Reader) error
	ImagePath(fileName string) (string, error)
}
