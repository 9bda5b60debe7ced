package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/msarvarov/vendor-market/internal/logger"
	"github.com/msarvarov/vendor-market/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. The filtered listing query is assembled with
// squirrel because its shape depends on the optional filter fields.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct persists a new product under its firm and returns it with
// server-assigned fields populated. A missing firm surfaces as a foreign
// key violation and is mapped to [ErrNoFirmWasFound].
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	categoryJSON, err := marshalStringList(product.Category)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, createProduct,
		product.FirmID, product.ProductName, product.Price, categoryJSON,
		product.BestSeller, product.Description, product.Image)

	saved, err := scanProduct(row)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Product{}, ErrNoFirmWasFound
		}

		log.Err(err).
			Str("func", "*productRepository.CreateProduct").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: product insert failed")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetProductsByFirm lists the products of a firm, optionally narrowed by
// the filter. Category matching uses the JSONB containment operator, so a
// product qualifies when it is tagged with any of the requested values.
func (r *productRepository) GetProductsByFirm(ctx context.Context, firmID int64, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("product_id", "firm_id", "product_name", "price",
		"category", "best_seller", "description", "image", "created_at").
		From("products").
		Where(sq.Eq{"firm_id": firmID}).
		OrderBy("product_id").
		PlaceholderFormat(sq.Dollar)

	if filter.BestSeller != nil {
		builder = builder.Where(sq.Eq{"best_seller": *filter.BestSeller})
	}
	if len(filter.Category) > 0 {
		or := make(sq.Or, 0, len(filter.Category))
		for _, category := range filter.Category {
			or = append(or, sq.Expr("category @> ?", fmt.Sprintf("%q", category)))
		}
		builder = builder.Where(or)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.GetProductsByFirm").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: product listing failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Err(err).Str("func", "*productRepository.GetProductsByFirm").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// DeleteProduct removes a product by its identifier.
// Returns [ErrNoProductWasFound] when nothing was deleted.
func (r *productRepository) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProduct, productID)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.DeleteProduct").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: product delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoProductWasFound
	}

	return nil
}

// scanProduct reads one product row, decoding the JSONB category column.
func scanProduct(row rowScanner) (models.Product, error) {
	var product models.Product
	var categoryJSON []byte

	if err := row.Scan(&product.ProductID, &product.FirmID, &product.ProductName, &product.Price,
		&categoryJSON, &product.BestSeller, &product.Description, &product.Image, &product.CreatedAt); err != nil {
		return models.Product{}, err
	}

	var err error
	if product.Category, err = unmarshalStringList(categoryJSON); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return product, nil
}
