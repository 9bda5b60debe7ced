package models

// RegisterResponse confirms a successful vendor registration.
// Registration deliberately does not return a token: the vendor is
// expected to log in afterwards.
type RegisterResponse struct {
	// Message is a human-readable confirmation string.
	Message string `json:"message"`
}

// LoginResponse carries the session token issued after a successful login.
type LoginResponse struct {
	// Success is a human-readable confirmation string.
	Success string `json:"success"`

	// Token is the compact JWS string the client presents on protected
	// requests via the Authorization header.
	Token string `json:"token"`
}

// VendorsResponse wraps the vendor list endpoint payload.
type VendorsResponse struct {
	Vendors []Vendor `json:"vendors"`
}

// VendorResponse wraps the single-vendor endpoint payload.
type VendorResponse struct {
	Vendor Vendor `json:"vendor"`
}

// FirmResponse wraps the single-firm endpoint payload.
type FirmResponse struct {
	Firm Firm `json:"firm"`
}

// FirmCreatedResponse confirms firm creation and reports the
// server-assigned identifier.
type FirmCreatedResponse struct {
	Message string `json:"message"`
	FirmID  int64  `json:"firmId"`
}

// ProductsResponse wraps the product list endpoint payload.
type ProductsResponse struct {
	Products []Product `json:"products"`
}

// ProductCreatedResponse confirms product creation and reports the
// server-assigned identifier.
type ProductCreatedResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
}
