package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for cart data storage.
type Repository interface {
	ListLines(ctx context.Context, userID uuid.UUID) ([]*Line, error)
	AddItem(ctx context.Context, item *Item) error
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
