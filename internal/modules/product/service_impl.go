package product

import (
	"context"
	"fmt"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/apperr"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/logging"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/metrics"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/auth"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/user"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/storage"
	"github.com/google/uuid"
)

type service struct {
	repo    Repository
	owners  OwnerResolver
	remover storage.Remover
	log     logging.Logger
}

// NewService creates a new product service.
func NewService(repo Repository, owners OwnerResolver, remover storage.Remover, log logging.Logger) Service {
	return &service{repo: repo, owners: owners, remover: remover, log: log}
}

func (s *service) AddProduct(ctx context.Context, caller auth.Principal, req SaveProductRequest) (*Product, error) {
	if err := validateSave(req); err != nil {
		return nil, err
	}
	vendorID, err := s.owners.VendorIDByOwner(ctx, caller.AccountID)
	if err != nil {
		return nil, fmt.Errorf("caller has no vendor account: %w", apperr.ErrForbidden)
	}

	p := &Product{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Images:      req.Images,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, caller auth.Principal, id string, req SaveProductRequest) (*Product, error) {
	if err := validateSave(req); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, caller, p); err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Stock = req.Stock
	p.Images = req.Images
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, caller auth.Principal, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, caller, p); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return err
	}

	// Row is gone; artifact removal is compensating and never fails the call.
	for _, key := range p.Images {
		if err := s.remover.Delete(ctx, key); err != nil {
			metrics.ArtifactCleanupFailures.Inc()
			s.log.Warn(ctx, "product artifact cleanup failed",
				"product_id", p.ID, "key", key, "error", err)
		}
	}
	return nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) StockCheck(ctx context.Context, id string, qty int) (StockCheck, error) {
	if qty <= 0 {
		return StockCheck{}, fmt.Errorf("quantity must be at least 1: %w", apperr.ErrInvalidInput)
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return StockCheck{}, err
	}
	return CheckStock(p, qty), nil
}

// authorize allows the owning vendor and admins.
func (s *service) authorize(ctx context.Context, caller auth.Principal, p *Product) error {
	if caller.Role == user.RoleAdmin {
		return nil
	}
	vendorID, err := s.owners.VendorIDByOwner(ctx, caller.AccountID)
	if err != nil || vendorID != p.VendorID {
		return fmt.Errorf("not the product owner: %w", apperr.ErrForbidden)
	}
	return nil
}

func validateSave(req SaveProductRequest) error {
	if req.Name == "" {
		return fmt.Errorf("product name is required: %w", apperr.ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("price must not be negative: %w", apperr.ErrInvalidInput)
	}
	if req.Stock < 0 {
		return fmt.Errorf("stock must not be negative: %w", apperr.ErrInvalidInput)
	}
	return nil
}
