package models

import "time"

// Firm represents a business owned by a vendor. A firm groups the
// products the vendor sells and carries display attributes used by the
// storefront.
type Firm struct {
	// FirmID is the internal unique identifier of the firm.
	FirmID int64 `json:"id"`

	// VendorID is the identifier of the vendor that owns the firm.
	// It is resolved from the session token at creation time, never from
	// the request body.
	VendorID int64 `json:"vendor_id"`

	// FirmName is the display name of the firm. Unique across all firms.
	FirmName string `json:"firm_name"`

	// Area is the free-form locality description (street, district).
	Area string `json:"area"`

	// Category lists the firm's offer categories, e.g. "veg", "non-veg".
	Category []string `json:"category"`

	// Region lists the cuisines or regions the firm serves.
	Region []string `json:"region"`

	// Offer is an optional promotional text shown on the storefront.
	Offer string `json:"offer"`

	// Image is the stored file name of the firm's uploaded image,
	// servable via the /uploads endpoint. Empty when no image was uploaded.
	Image string `json:"image"`

	// CreatedAt is the timestamp when the firm was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Firm model.
func (f Firm) TableName() string {
	return "firms"
}
