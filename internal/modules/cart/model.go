package cart

import (
	"time"

	"github.com/google/uuid"
)

// Item is one product line in an account's cart.
type Item struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Line is an item joined with its product for display and totals.
type Line struct {
	Item
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

// Cart is the computed view returned to clients.
type Cart struct {
	UserID     uuid.UUID `json:"user_id"`
	Items      []*Line   `json:"items"`
	TotalItems int       `json:"total_items"`
	TotalPrice float64   `json:"total_price"`
}
