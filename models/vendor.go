package models

import "time"

// Vendor represents a marketplace vendor account used for authentication
// and firm ownership. Sensitive fields must never be exposed outside
// trusted boundaries.
type Vendor struct {
	// VendorID is the internal unique identifier of the vendor.
	// Assigned by the database at creation and used as the subject of
	// issued session tokens.
	VendorID int64 `json:"id"`

	// Username is the vendor's display name. It is not required to be
	// unique.
	Username string `json:"username"`

	// Email is the unique vendor identifier used during authentication.
	// At most one vendor may exist per email value at any time.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the vendor's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized into API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the vendor account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Vendor model.
func (v Vendor) TableName() string {
	return "vendors"
}
