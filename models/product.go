package models

import "time"

// Product represents a single item listed by a firm.
type Product struct {
	// ProductID is the internal unique identifier of the product.
	ProductID int64 `json:"id"`

	// FirmID is the identifier of the firm the product belongs to.
	// Deleting the firm removes its products.
	FirmID int64 `json:"firm_id"`

	// ProductName is the display name of the product.
	ProductName string `json:"product_name"`

	// Price is the product price in the marketplace currency.
	Price float64 `json:"price"`

	// Category lists the product categories, e.g. "veg", "non-veg".
	Category []string `json:"category"`

	// BestSeller marks the product as highlighted on the storefront.
	BestSeller bool `json:"best_seller"`

	// Description is an optional free-form product description.
	Description string `json:"description"`

	// Image is the stored file name of the product's uploaded image.
	Image string `json:"image"`

	// CreatedAt is the timestamp when the product was created.
	CreatedAt time.Time `json:"created_at"`
}

// ProductFilter narrows product listings. Zero-value fields are ignored,
// so an empty filter returns every product of the firm.
type ProductFilter struct {
	// BestSeller, when non-nil, keeps only products whose best_seller
	// flag equals the pointed-to value.
	BestSeller *bool

	// Category, when non-empty, keeps only products tagged with at least
	// one of the given categories.
	Category []string
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}
