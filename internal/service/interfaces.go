package service

import (
	"context"
	"io"

	"github.com/msarvarov/vendor-market/models"
)

type AuthService interface {
	RegisterVendor(ctx context.Context, vendor models.Vendor, password string) (models.Vendor, error)
	Login(ctx context.Context, email string, password string) (models.Vendor, error)
	CreateToken(ctx context.Context, vendor models.Vendor) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	GetAllVendors(ctx context.Context) ([]models.Vendor, error)
	GetVendorByID(ctx context.Context, vendorID int64) (models.Vendor, error)
}

type FirmService interface {
	CreateFirm(ctx context.Context, firm models.Firm) (models.Firm, error)
	GetFirmByID(ctx context.Context, firmID int64) (models.Firm, error)
	DeleteFirm(ctx context.Context, firmID int64) error
}

type ProductService interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProductsByFirm(ctx context.Context, firmID int64, filter models.ProductFilter) ([]models.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// ImageService stores uploaded images under generated unique names and
// resolves stored names back to servable file paths.
type ImageService interface {
	SaveImage(ctx context.Context, originalName string, content io.Reader) (string, error)
	ImagePath(ctx context.Context, fileName string) (string, error)
}
