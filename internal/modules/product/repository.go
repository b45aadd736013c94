package product

import (
	"context"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/dbx"
	"github.com/google/uuid"
)

// Repository defines the interface for product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByVendor removes every product owned by vendorID inside the given
	// unit of work and returns the number of rows deleted.
	DeleteByVendor(ctx context.Context, tx dbx.DBTX, vendorID uuid.UUID) (int64, error)
}
