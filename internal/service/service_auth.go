package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/msarvarov/vendor-market/internal/config"
	"github.com/msarvarov/vendor-market/internal/crypto"
	"github.com/msarvarov/vendor-market/internal/logger"
	"github.com/msarvarov/vendor-market/internal/store"
	"github.com/msarvarov/vendor-market/internal/utils"
	"github.com/msarvarov/vendor-market/models"
)

// authService is the concrete implementation of AuthService.
// It handles vendor registration, credential verification, vendor lookup
// and JWT token lifecycle using a VendorRepository for persistence and
// bcrypt for password hashing.
type authService struct {
	// vendorRepository is the data-access layer used to create and look up vendors.
	vendorRepository store.VendorRepository

	// hasher performs bcrypt password hashing and verification.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// VendorRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(vendorRepository store.VendorRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		vendorRepository: vendorRepository,
		hasher:           crypto.NewPasswordHasher(cfg.BcryptCost),
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterVendor creates a new vendor account.
//
// It validates that Username, Email and the password are all non-empty,
// checks that the email is not already registered, hashes the password
// with bcrypt, and delegates persistence to the VendorRepository. The
// plaintext password never reaches the store layer. The unique constraint
// on the email column still backs the pre-check, so two concurrent
// registrations cannot both succeed.
//
// Returns the persisted vendor (with a server-assigned VendorID) or:
//   - ErrInvalidDataProvided if Username, Email or the password is empty.
//   - store.ErrEmailAlreadyExists if the email is already registered.
//   - A wrapped storage error if the repository call fails for any other reason.
func (a *authService) RegisterVendor(ctx context.Context, vendor models.Vendor, password string) (models.Vendor, error) {
	log := logger.FromContext(ctx)

	if vendor.Username == "" || vendor.Email == "" || password == "" {
		log.Error().Str("email", vendor.Email).Msg("invalid vendor data provided")
		return models.Vendor{}, ErrInvalidDataProvided
	}

	if _, err := a.vendorRepository.FindVendorByEmail(ctx, vendor.Email); err == nil {
		log.Error().Str("email", vendor.Email).Msg("email is already registered")
		return models.Vendor{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoVendorWasFound) {
		log.Err(err).Str("email", vendor.Email).Msg("vendor search by email failed")
		return models.Vendor{}, fmt.Errorf("vendor search by email failed: %w", err)
	}

	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("email", vendor.Email).Msg("password hashing failed")
		return models.Vendor{}, fmt.Errorf("password hashing failed: %w", err)
	}
	vendor.PasswordHash = passwordHash

	registeredVendor, err := a.vendorRepository.CreateVendor(ctx, vendor)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.Vendor{}, err
		}
		log.Err(err).Str("email", vendor.Email).Msg("vendor creation ended with error")
		return models.Vendor{}, fmt.Errorf("vendor creation ended with error: %w", err)
	}

	return registeredVendor, nil
}

// Login authenticates an existing vendor.
//
// It validates that both email and password are non-empty, looks up the
// account by email, and verifies the supplied password against the stored
// bcrypt hash. An unknown email and a wrong password both surface as
// ErrWrongEmailOrPassword, so the response does not reveal which one failed.
//
// Returns the authenticated vendor record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongEmailOrPassword for any credential failure.
//   - A wrapped storage error if the repository lookup fails unexpectedly.
func (a *authService) Login(ctx context.Context, email string, password string) (models.Vendor, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid vendor data provided")
		return models.Vendor{}, ErrInvalidDataProvided
	}

	foundVendor, err := a.vendorRepository.FindVendorByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoVendorWasFound) {
			return models.Vendor{}, ErrWrongEmailOrPassword
		}
		log.Err(err).Str("email", email).Msg("vendor search by email failed")
		return models.Vendor{}, fmt.Errorf("vendor search by email failed: %w", err)
	}

	if err := a.hasher.Verify(password, foundVendor.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Error().
				Int64("id", foundVendor.VendorID).
				Str("email", foundVendor.Email).
				Msg("wrong password")
			return models.Vendor{}, ErrWrongEmailOrPassword
		}
		log.Err(err).Str("email", email).Msg("password verification failed")
		return models.Vendor{}, fmt.Errorf("password verification failed: %w", err)
	}

	return foundVendor, nil
}

// CreateToken issues a signed JWT for the given vendor.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, vendor models.Vendor) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, vendor.VendorID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid
// on any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetAllVendors lists every registered vendor account.
func (a *authService) GetAllVendors(ctx context.Context) ([]models.Vendor, error) {
	log := logger.FromContext(ctx)

	vendors, err := a.vendorRepository.GetAllVendors(ctx)
	if err != nil {
		log.Err(err).Msg("vendor listing failed")
		return nil, fmt.Errorf("vendor listing failed: %w", err)
	}

	return vendors, nil
}

// GetVendorByID retrieves one vendor account by its identifier.
//
// Returns store.ErrNoVendorWasFound unchanged when the vendor does not
// exist, so the handler layer can map it to a 404.
func (a *authService) GetVendorByID(ctx context.Context, vendorID int64) (models.Vendor, error) {
	log := logger.FromContext(ctx)

	vendor, err := a.vendorRepository.GetVendorByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, store.ErrNoVendorWasFound) {
			return models.Vendor{}, err
		}
		log.Err(err).Int64("id", vendorID).Msg("vendor lookup failed")
		return models.Vendor{}, fmt.Errorf("vendor lookup failed: %w", err)
	}

	return vendor, nil
}
