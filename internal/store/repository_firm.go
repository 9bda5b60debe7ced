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

// firmRepository is the PostgreSQL-backed implementation of [FirmRepository].
// Category and region lists are stored in JSONB columns.
type firmRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFirmRepository constructs a [FirmRepository] backed by the provided
// database connection and logger.
func NewFirmRepository(db *DB, logger *logger.Logger) FirmRepository {
	logger.Debug().Msg("creating firm repository")
	return &firmRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFirm persists a new firm and returns it with server-assigned
// fields populated.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the firm name → [ErrFirmAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *firmRepository) CreateFirm(ctx context.Context, firm models.Firm) (models.Firm, error) {
	log := logger.FromContext(ctx)

	categoryJSON, err := marshalStringList(firm.Category)
	if err != nil {
		return models.Firm{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	regionJSON, err := marshalStringList(firm.Region)
	if err != nil {
		return models.Firm{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, createFirm,
		firm.VendorID, firm.FirmName, firm.Area, categoryJSON, regionJSON, firm.Offer, firm.Image)

	saved, err := scanFirm(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Firm{}, ErrFirmAlreadyExists
		}

		log.Err(err).
			Str("func", "*firmRepository.CreateFirm").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: firm insert failed")
		return models.Firm{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// GetFirmByID retrieves one firm by its identifier.
// Returns [ErrNoFirmWasFound] when no such firm exists.
func (r *firmRepository) GetFirmByID(ctx context.Context, firmID int64) (models.Firm, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getFirmByID, firmID)

	firm, err := scanFirm(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Firm{}, ErrNoFirmWasFound
		}

		log.Err(err).
			Str("func", "*firmRepository.GetFirmByID").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: firm lookup failed")
		return models.Firm{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return firm, nil
}

// DeleteFirm removes a firm by its identifier. Products of the firm are
// removed by the ON DELETE CASCADE constraint.
// Returns [ErrNoFirmWasFound] when nothing was deleted.
func (r *firmRepository) DeleteFirm(ctx context.Context, firmID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFirm, firmID)
	if err != nil {
		log.Err(err).
			Str("func", "*firmRepository.DeleteFirm").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: firm delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoFirmWasFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanFirm reads one firm row, decoding the JSONB list columns.
func scanFirm(row rowScanner) (models.Firm, error) {
	var firm models.Firm
	var categoryJSON, regionJSON []byte

	if err := row.Scan(&firm.FirmID, &firm.VendorID, &firm.FirmName, &firm.Area,
		&categoryJSON, &regionJSON, &firm.Offer, &firm.Image, &firm.CreatedAt); err != nil {
		return models.Firm{}, err
	}

	var err error
	if firm.Category, err = unmarshalStringList(categoryJSON); err != nil {
		return models.Firm{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if firm.Region, err = unmarshalStringList(regionJSON); err != nil {
		return models.Firm{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return firm, nil
}
