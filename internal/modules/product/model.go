package product

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item listed by a vendor. Images holds the opaque
// object-store keys of the uploaded artifacts, in upload order; the records
// exist only as long as the owning vendor does.
type Product struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SaveProductRequest is the payload for creating or updating a product.
type SaveProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
}
