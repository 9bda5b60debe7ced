package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing key and the database DSN have no sane defaults: a
// process without them must fail fast rather than issue unverifiable
// tokens or serve without persistence.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.App.TokenDuration <= 0 {
		return ErrInvalidTokenDuration
	}

	return nil
}
