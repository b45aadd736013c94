package cart

import (
	"context"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/auth"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/product"
)

// Service defines cart business logic. Every operation takes the caller and
// an optional target user id: admins may address any account's cart, other
// callers only their own.
type Service interface {
	GetCart(ctx context.Context, caller auth.Principal, userID string) (*Cart, error)
	AddItem(ctx context.Context, caller auth.Principal, userID, productID string, quantity int) (*Cart, error)
	UpdateItem(ctx context.Context, caller auth.Principal, userID, productID string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, caller auth.Principal, userID, productID string) (*Cart, error)
	Clear(ctx context.Context, caller auth.Principal, userID string) error
}

// ProductLookup is the slice of the product repository the cart needs.
type ProductLookup interface {
	GetByID(ctx context.Context, id string) (*product.Product, error)
}
