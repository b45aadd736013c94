package cart

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/apperr"
	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL cart repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListLines(ctx context.Context, userID uuid.UUID) ([]*Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
		       p.name, p.price
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	var lines []*Line
	for rows.Next() {
		l := &Line{}
		if err := rows.Scan(&l.ID, &l.UserID, &l.ProductID, &l.Quantity,
			&l.CreatedAt, &l.UpdatedAt, &l.ProductName, &l.UnitPrice); err != nil {
			return nil, err
		}
		l.LineTotal = l.UnitPrice * float64(l.Quantity)
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// AddItem inserts the line or, when the product is already in the cart,
// increments its quantity.
func (r *postgresRepo) AddItem(ctx context.Context, item *Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_items (id, user_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()`,
		item.ID, item.UserID, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items SET quantity = $1, updated_at = $2
		WHERE user_id = $3 AND product_id = $4`,
		quantity, time.Now(), userID, productID)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("product not in cart: %w", apperr.ErrNotFound)
	}
	return nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("product not in cart: %w", apperr.ErrNotFound)
	}
	return nil
}

func (r *postgresRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
