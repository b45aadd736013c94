package cart

import (
	"context"
	"fmt"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/apperr"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/auth"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/product"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/user"
	"github.com/google/uuid"
)

type service struct {
	repo     Repository
	products ProductLookup
}

// NewService creates a new cart service.
func NewService(repo Repository, products ProductLookup) Service {
	return &service{repo: repo, products: products}
}

// resolveOwner decides whose cart the request addresses. Admins may pass an
// explicit user id; everyone else gets their own cart regardless of input.
func resolveOwner(caller auth.Principal, userID string) (uuid.UUID, error) {
	if caller.Role == user.RoleAdmin && userID != "" {
		id, err := uuid.Parse(userID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid user id: %w", apperr.ErrInvalidInput)
		}
		return id, nil
	}
	return caller.AccountID, nil
}

func (s *service) GetCart(ctx context.Context, caller auth.Principal, userID string) (*Cart, error) {
	owner, err := resolveOwner(caller, userID)
	if err != nil {
		return nil, err
	}
	return s.buildCart(ctx, owner)
}

func (s *service) AddItem(ctx context.Context, caller auth.Principal, userID, productID string, quantity int) (*Cart, error) {
	owner, err := resolveOwner(caller, userID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", apperr.ErrInvalidInput)
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if check := product.CheckStock(p, quantity); !check.OK {
		return nil, fmt.Errorf("insufficient stock, %d available: %w", check.Available, apperr.ErrInvalidInput)
	}

	item := &Item{
		ID:        uuid.New(),
		UserID:    owner,
		ProductID: p.ID,
		Quantity:  quantity,
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return s.buildCart(ctx, owner)
}

func (s *service) UpdateItem(ctx context.Context, caller auth.Principal, userID, productID string, quantity int) (*Cart, error) {
	owner, err := resolveOwner(caller, userID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", apperr.ErrInvalidInput)
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if check := product.CheckStock(p, quantity); !check.OK {
		return nil, fmt.Errorf("insufficient stock, %d available: %w", check.Available, apperr.ErrInvalidInput)
	}

	if err := s.repo.UpdateQuantity(ctx, owner, p.ID, quantity); err != nil {
		return nil, err
	}
	return s.buildCart(ctx, owner)
}

func (s *service) RemoveItem(ctx context.Context, caller auth.Principal, userID, productID string) (*Cart, error) {
	owner, err := resolveOwner(caller, userID)
	if err != nil {
		return nil, err
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", apperr.ErrInvalidInput)
	}
	if err := s.repo.RemoveItem(ctx, owner, pid); err != nil {
		return nil, err
	}
	return s.buildCart(ctx, owner)
}

func (s *service) Clear(ctx context.Context, caller auth.Principal, userID string) error {
	owner, err := resolveOwner(caller, userID)
	if err != nil {
		return err
	}
	return s.repo.Clear(ctx, owner)
}

// buildCart assembles the computed view. An empty cart is a valid cart with
// zero totals, not an error.
func (s *service) buildCart(ctx context.Context, owner uuid.UUID) (*Cart, error) {
	lines, err := s.repo.ListLines(ctx, owner)
	if err != nil {
		return nil, err
	}

	c := &Cart{UserID: owner, Items: lines}
	for _, l := range lines {
		c.TotalItems += l.Quantity
		c.TotalPrice += l.LineTotal
	}
	return c, nil
}
