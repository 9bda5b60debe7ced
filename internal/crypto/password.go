// Package crypto provides the credential-hashing primitives used by the
// authentication flow. Passwords are hashed with bcrypt: the salt is
// generated per hash and embedded in the output, and the work factor is
// tunable via the cost parameter.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when no explicit cost is
// configured. Tests may construct a hasher with bcrypt.MinCost to avoid
// the deliberate slowness of the production setting.
const DefaultCost = 10

// maxPasswordLength is the bcrypt input limit. Longer inputs are silently
// truncated by the algorithm, so they are rejected up front instead.
const maxPasswordLength = 72

// ErrPasswordMismatch is returned by [PasswordHasher.Verify] when the
// plaintext does not match the stored hash. Any other error from Verify
// indicates a malformed hash, not a failed comparison.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordHasher performs one-way password hashing and verification.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, hash string) error
}

// bcryptHasher is the bcrypt-backed implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] with the given bcrypt
// cost. A cost below [bcrypt.MinCost] falls back to [DefaultCost].
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash transforms a plaintext password into a storable bcrypt hash.
// The returned string embeds the algorithm version, cost, and salt, so no
// separate salt storage is needed.
//
// Returns an error if the plaintext exceeds the 72-byte bcrypt limit or
// if hashing itself fails; callers should treat either as fatal to the
// operation in progress.
func (b *bcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordLength {
		return "", fmt.Errorf("password exceeds %d bytes", maxPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify recomputes the hash of plaintext using the salt embedded in hash
// and compares the results in constant time.
//
// Returns nil on a match, [ErrPasswordMismatch] when the pair simply does
// not match, and a wrapped error when hash is not a valid bcrypt value.
func (b *bcryptHasher) Verify(plaintext string, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("error comparing password with hash: %w", err)
	}

	return nil
}
