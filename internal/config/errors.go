package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are absent or invalid. All of them are
// startup-fatal.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrMissingDatabaseDSN indicates that no database connection string
	// was provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
	// ErrInvalidTokenDuration indicates a zero or negative session token
	// lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
)
