package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/msarvarov/vendor-market/internal/logger"
	"github.com/msarvarov/vendor-market/models"
)

// vendorRepository is the PostgreSQL-backed implementation of
// [VendorRepository]. It handles vendor account creation and lookup
// against the "vendors" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type vendorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVendorRepository constructs a [VendorRepository] backed by the
// provided database connection and logger.
func NewVendorRepository(db *DB, logger *logger.Logger) VendorRepository {
	logger.Debug().Msg("creating vendor repository")
	return &vendorRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVendor persists a new vendor record and returns the fully
// populated [models.Vendor] with server-assigned fields (VendorID,
// CreatedAt).
//
// The INSERT uses the [createVendor] query which returns all columns via
// a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//     The unique index on email is what resolves a race between two
//     concurrent registrations for the same address.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *vendorRepository) CreateVendor(ctx context.Context, vendor models.Vendor) (models.Vendor, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createVendor, vendor.Username, vendor.Email, vendor.PasswordHash)

	if err := row.Scan(&vendor.VendorID, &vendor.Username, &vendor.Email, &vendor.PasswordHash, &vendor.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Vendor{}, ErrEmailAlreadyExists
		default:
			log.Err(err).
				Str("func", "*vendorRepository.CreateVendor").
				Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
				Msg("error: vendor insert failed")
			return models.Vendor{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return vendor, nil
}

// FindVendorByEmail retrieves the vendor record whose email matches the
// given value. Returns [ErrNoVendorWasFound] for an empty result set.
func (r *vendorRepository) FindVendorByEmail(ctx context.Context, email string) (models.Vendor, error) {
	log := logger.FromContext(ctx)

	var foundVendor models.Vendor
	row := r.db.QueryRowContext(ctx, findVendorByEmail, email)

	if err := row.Scan(&foundVendor.VendorID, &foundVendor.Username, &foundVendor.Email, &foundVendor.PasswordHash, &foundVendor.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vendor{}, ErrNoVendorWasFound
		}

		log.Err(err).
			Str("func", "*vendorRepository.FindVendorByEmail").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: vendor lookup by email failed")
		return models.Vendor{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundVendor, nil
}

// GetAllVendors retrieves every vendor record ordered by identifier.
func (r *vendorRepository) GetAllVendors(ctx context.Context) ([]models.Vendor, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllVendors)
	if err != nil {
		log.Err(err).
			Str("func", "*vendorRepository.GetAllVendors").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: vendor listing failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	vendors := make([]models.Vendor, 0)
	for rows.Next() {
		var vendor models.Vendor
		if err := rows.Scan(&vendor.VendorID, &vendor.Username, &vendor.Email, &vendor.PasswordHash, &vendor.CreatedAt); err != nil {
			log.Err(err).Str("func", "*vendorRepository.GetAllVendors").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		vendors = append(vendors, vendor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vendors, nil
}

// GetVendorByID retrieves one vendor record by its identifier.
// Returns [ErrNoVendorWasFound] when no such vendor exists.
func (r *vendorRepository) GetVendorByID(ctx context.Context, vendorID int64) (models.Vendor, error) {
	log := logger.FromContext(ctx)

	var foundVendor models.Vendor
	row := r.db.QueryRowContext(ctx, getVendorByID, vendorID)

	if err := row.Scan(&foundVendor.VendorID, &foundVendor.Username, &foundVendor.Email, &foundVendor.PasswordHash, &foundVendor.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vendor{}, ErrNoVendorWasFound
		}

		log.Err(err).
			Str("func", "*vendorRepository.GetVendorByID").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: vendor lookup by id failed")
		return models.Vendor{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundVendor, nil
}
