// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// VendorIDCtxKey is the key used to store the authenticated vendor
// identifier in the request context. Used together with
// GetVendorIDFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.VendorIDCtxKey, int64(42))
var VendorIDCtxKey = contextKey("vendorID")

// GetVendorIDFromContext retrieves the vendor identifier from the context.
//
// Returns the vendor ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetVendorIDFromContext(ctx context.Context) (int64, bool) {
	vendorID, ok := ctx.Value(VendorIDCtxKey).(int64)
	return vendorID, ok
}
