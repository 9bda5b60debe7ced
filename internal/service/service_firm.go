package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msarvarov/vendor-market/internal/logger"
	"github.com/msarvarov/vendor-market/internal/store"
	"github.com/msarvarov/vendor-market/models"
)

// firmService is the concrete implementation of FirmService. A firm is
// always created on behalf of an authenticated vendor, so creation first
// confirms the owning vendor account still exists.
type firmService struct {
	firmRepository   store.FirmRepository
	vendorRepository store.VendorRepository
	logger           *logger.Logger
}

// NewFirmService constructs a FirmService wired to the given repositories.
func NewFirmService(firmRepository store.FirmRepository, vendorRepository store.VendorRepository, logger *logger.Logger) FirmService {
	return &firmService{
		firmRepository:   firmRepository,
		vendorRepository: vendorRepository,
		logger:           logger,
	}
}

// CreateFirm persists a new firm owned by firm.VendorID.
//
// Returns the persisted firm (with a server-assigned FirmID) or:
//   - ErrInvalidDataProvided if FirmName is empty or VendorID is not set.
//   - store.ErrNoVendorWasFound if the owning vendor no longer exists.
//   - store.ErrFirmAlreadyExists if the firm name is already taken.
func (f *firmService) CreateFirm(ctx context.Context, firm models.Firm) (models.Firm, error) {
	log := logger.FromContext(ctx)

	if firm.FirmName == "" || firm.VendorID == 0 {
		log.Error().Str("firm_name", firm.FirmName).Msg("invalid firm data provided")
		return models.Firm{}, ErrInvalidDataProvided
	}

	if _, err := f.vendorRepository.GetVendorByID(ctx, firm.VendorID); err != nil {
		if errors.Is(err, store.ErrNoVendorWasFound) {
			return models.Firm{}, err
		}
		log.Err(err).Int64("vendor_id", firm.VendorID).Msg("vendor lookup failed")
		return models.Firm{}, fmt.Errorf("vendor lookup failed: %w", err)
	}

	savedFirm, err := f.firmRepository.CreateFirm(ctx, firm)
	if err != nil {
		if errors.Is(err, store.ErrFirmAlreadyExists) {
			return models.Firm{}, err
		}
		log.Err(err).Str("firm_name", firm.FirmName).Msg("firm creation ended with error")
		return models.Firm{}, fmt.Errorf("firm creation ended with error: %w", err)
	}

	return savedFirm, nil
}

// GetFirmByID retrieves one firm by its identifier.
//
// Returns store.ErrNoFirmWasFound unchanged when the firm does not exist.
func (f *firmService) GetFirmByID(ctx context.Context, firmID int64) (models.Firm, error) {
	log := logger.FromContext(ctx)

	firm, err := f.firmRepository.GetFirmByID(ctx, firmID)
	if err != nil {
		if errors.Is(err, store.ErrNoFirmWasFound) {
			return models.Firm{}, err
		}
		log.Err(err).Int64("firm_id", firmID).Msg("firm lookup failed")
		return models.Firm{}, fmt.Errorf("firm lookup failed: %w", err)
	}

	return firm, nil
}

// DeleteFirm removes a firm and, through the schema's cascade, all of its
// products.
//
// Returns store.ErrNoFirmWasFound unchanged when the firm does not exist.
func (f *firmService) DeleteFirm(ctx context.Context, firmID int64) error {
	log := logger.FromContext(ctx)

	if err := f.firmRepository.DeleteFirm(ctx, firmID); err != nil {
		if errors.Is(err, store.ErrNoFirmWasFound) {
			return err
		}
		log.Err(err).Int64("firm_id", firmID).Msg("firm deletion ended with error")
		return fmt.Errorf("firm deletion ended with error: %w", err)
	}

	return nil
}
