package product

import (
	"context"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/auth"
	"github.com/google/uuid"
)

// Service defines product catalog business logic.
type Service interface {
	// AddProduct lists a new product under the calling merchant's store.
	AddProduct(ctx context.Context, caller auth.Principal, req SaveProductRequest) (*Product, error)

	// UpdateProduct modifies a product owned by the caller (or any product for
	// an admin caller).
	UpdateProduct(ctx context.Context, caller auth.Principal, id string, req SaveProductRequest) (*Product, error)

	// DeleteProduct removes a single product and best-effort cleans its stored
	// artifacts after the row is gone.
	DeleteProduct(ctx context.Context, caller auth.Principal, id string) error

	// GetProduct and ListProducts serve the public storefront.
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)

	// StockCheck probes availability for the cart/order flow.
	StockCheck(ctx context.Context, id string, qty int) (StockCheck, error)
}

// OwnerResolver maps an account to the vendor it owns. Implemented by the
// vendor module and injected in main to keep this package vendor-agnostic.
type OwnerResolver interface {
	VendorIDByOwner(ctx context.Context, accountID uuid.UUID) (uuid.UUID, error)
}
