package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msarvarov/vendor-market/internal/logger"
	"github.com/msarvarov/vendor-market/internal/store"
	"github.com/msarvarov/vendor-market/models"
)

// productService is the concrete implementation of ProductService.
type productService struct {
	productRepository store.ProductRepository
	firmRepository    store.FirmRepository
	logger            *logger.Logger
}

// NewProductService constructs a ProductService wired to the given repositories.
func NewProductService(productRepository store.ProductRepository, firmRepository store.FirmRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		firmRepository:    firmRepository,
		logger:            logger,
	}
}

// CreateProduct persists a new product under product.FirmID.
//
// Returns the persisted product (with a server-assigned ProductID) or:
//   - ErrInvalidDataProvided if ProductName is empty, Price is negative
//     or FirmID is not set.
//   - store.ErrNoFirmWasFound if the owning firm does not exist.
func (p *productService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	if product.ProductName == "" || product.Price < 0 || product.FirmID == 0 {
		log.Error().Str("product_name", product.ProductName).Msg("invalid product data provided")
		return models.Product{}, ErrInvalidDataProvided
	}

	savedProduct, err := p.productRepository.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, store.ErrNoFirmWasFound) {
			return models.Product{}, err
		}
		log.Err(err).Str("product_name", product.ProductName).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	return savedProduct, nil
}

// GetProductsByFirm lists the products of one firm, optionally narrowed by
// filter. The firm is looked up first so that an unknown firm surfaces as
// store.ErrNoFirmWasFound rather than an empty listing.
func (p *productService) GetProductsByFirm(ctx context.Context, firmID int64, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	if _, err := p.firmRepository.GetFirmByID(ctx, firmID); err != nil {
		if errors.Is(err, store.ErrNoFirmWasFound) {
			return nil, err
		}
		log.Err(err).Int64("firm_id", firmID).Msg("firm lookup failed")
		return nil, fmt.Errorf("firm lookup failed: %w", err)
	}

	products, err := p.productRepository.GetProductsByFirm(ctx, firmID, filter)
	if err != nil {
		log.Err(err).Int64("firm_id", firmID).Msg("product listing failed")
		return nil, fmt.Errorf("product listing failed: %w", err)
	}

	return products, nil
}

// DeleteProduct removes a product by its identifier.
//
// Returns store.ErrNoProductWasFound unchanged when the product does not exist.
func (p *productService) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	if err := p.productRepository.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNoProductWasFound) {
			return err
		}
		log.Err(err).Int64("product_id", productID).Msg("product deletion ended with error")
		return fmt.Errorf("product deletion ended with error: %w", err)
	}

	return nil
}
