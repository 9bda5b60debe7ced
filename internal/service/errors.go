package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongEmailOrPassword covers both an unknown email and a failed
	// password check, so a caller cannot tell which credential was wrong.
	ErrWrongEmailOrPassword = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
