package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/apperr"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/dbx"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id, vendor_id, name, description, price, stock, images, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, vendor_id, name, description, price, stock, images)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.VendorID, p.Name, p.Description, p.Price, p.Stock, pq.Array(p.Images))
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", apperr.ErrInvalidInput)
	}
	return scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id=$1`, uid))
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
}

// ListByVendor returns the vendor's products in creation order, the order the
// cascade reports and cleans them in.
func (r *postgresRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE vendor_id=$1 ORDER BY created_at ASC`, vendorID)
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, price=$3, stock=$4, images=$5, updated_at=$6
		WHERE id=$7`,
		p.Name, p.Description, p.Price, p.Stock, pq.Array(p.Images), time.Now(), p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("product %s: %w", p.ID, apperr.ErrNotFound)
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("product %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *postgresRepo) DeleteByVendor(ctx context.Context, tx dbx.DBTX, vendorID uuid.UUID) (int64, error) {
	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE vendor_id=$1`, vendorID)
	if err != nil {
		return 0, fmt.Errorf("delete vendor products: %w", err)
	}
	return res.RowsAffected()
}

// ── helpers ──────────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	p := &Product{}
	var images pq.StringArray
	err := row.Scan(&p.ID, &p.VendorID, &p.Name, &p.Description,
		&p.Price, &p.Stock, &images, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product: %w", apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	p.Images = images
	return p, nil
}

func (r *postgresRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()
	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
