package product

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/apperr"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/logging"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/auth"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeRepo struct {
	Repository
	byID    map[uuid.UUID]*Product
	deleted []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[uuid.UUID]*Product{}}
}

func (f *fakeRepo) Create(ctx context.Context, p *Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", apperr.ErrInvalidInput)
	}
	p, ok := f.byID[uid]
	if !ok {
		return nil, fmt.Errorf("product: %w", apperr.ErrNotFound)
	}
	return p, nil
}

func (f *fakeRepo) Update(ctx context.Context, p *Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return fmt.Errorf("product %s: %w", id, apperr.ErrNotFound)
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeOwners struct {
	vendors map[uuid.UUID]uuid.UUID // account -> vendor
}

func (f *fakeOwners) VendorIDByOwner(ctx context.Context, accountID uuid.UUID) (uuid.UUID, error) {
	id, ok := f.vendors[accountID]
	if !ok {
		return uuid.Nil, fmt.Errorf("vendor: %w", apperr.ErrNotFound)
	}
	return id, nil
}

type fakeRemover struct {
	deleted []string
	fail    map[string]error
}

func (f *fakeRemover) Delete(ctx context.Context, key string) error {
	if err, ok := f.fail[key]; ok {
		return err
	}
	f.deleted = append(f.deleted, key)
	return nil
}

// -------- harness --------

type svcTest struct {
	svc     Service
	repo    *fakeRepo
	owners  *fakeOwners
	remover *fakeRemover
}

func newSvcTest(t *testing.T) *svcTest {
	t.Helper()
	repo := newFakeRepo()
	owners := &fakeOwners{vendors: map[uuid.UUID]uuid.UUID{}}
	remover := &fakeRemover{}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return &svcTest{
		svc:     NewService(repo, owners, remover, log),
		repo:    repo,
		owners:  owners,
		remover: remover,
	}
}

func (s *svcTest) merchant() auth.Principal {
	accountID, vendorID := uuid.New(), uuid.New()
	s.owners.vendors[accountID] = vendorID
	return auth.Principal{AccountID: accountID, Role: user.RoleMerchant}
}

// -------- tests --------

func TestAddProduct_ListsUnderCallersVendor(t *testing.T) {
	s := newSvcTest(t)
	caller := s.merchant()

	p, err := s.svc.AddProduct(context.Background(), caller, SaveProductRequest{
		Name: "Hand-woven rug", Price: 1200, Stock: 3, Images: []string{"img/rug.jpg"},
	})
	require.NoError(t, err)
	require.Equal(t, s.owners.vendors[caller.AccountID], p.VendorID)
	require.Contains(t, s.repo.byID, p.ID)
}

func TestAddProduct_RequiresVendorAccount(t *testing.T) {
	s := newSvcTest(t)
	caller := auth.Principal{AccountID: uuid.New(), Role: user.RoleCustomer}

	_, err := s.svc.AddProduct(context.Background(), caller, SaveProductRequest{Name: "X", Price: 1})
	require.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestAddProduct_Validation(t *testing.T) {
	s := newSvcTest(t)
	caller := s.merchant()

	_, err := s.svc.AddProduct(context.Background(), caller, SaveProductRequest{Price: 1})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = s.svc.AddProduct(context.Background(), caller, SaveProductRequest{Name: "X", Price: -1})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = s.svc.AddProduct(context.Background(), caller, SaveProductRequest{Name: "X", Stock: -1})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestUpdateProduct_OwnerOnly(t *testing.T) {
	s := newSvcTest(t)
	owner := s.merchant()
	stranger := s.merchant()

	p, err := s.svc.AddProduct(context.Background(), owner, SaveProductRequest{Name: "Lamp", Price: 50})
	require.NoError(t, err)

	_, err = s.svc.UpdateProduct(context.Background(), stranger, p.ID.String(),
		SaveProductRequest{Name: "Stolen lamp", Price: 1})
	require.ErrorIs(t, err, apperr.ErrForbidden)

	updated, err := s.svc.UpdateProduct(context.Background(), owner, p.ID.String(),
		SaveProductRequest{Name: "Brass lamp", Price: 60, Stock: 2})
	require.NoError(t, err)
	require.Equal(t, "Brass lamp", updated.Name)
}

func TestUpdateProduct_AdminMayEditAny(t *testing.T) {
	s := newSvcTest(t)
	owner := s.merchant()
	admin := auth.Principal{AccountID: uuid.New(), Role: user.RoleAdmin}

	p, err := s.svc.AddProduct(context.Background(), owner, SaveProductRequest{Name: "Lamp", Price: 50})
	require.NoError(t, err)

	_, err = s.svc.UpdateProduct(context.Background(), admin, p.ID.String(),
		SaveProductRequest{Name: "Moderated lamp", Price: 50})
	require.NoError(t, err)
}

func TestDeleteProduct_CleansArtifactsBestEffort(t *testing.T) {
	s := newSvcTest(t)
	caller := s.merchant()
	s.remover.fail = map[string]error{"img/two.jpg": fmt.Errorf("timeout")}

	p, err := s.svc.AddProduct(context.Background(), caller, SaveProductRequest{
		Name: "Tea set", Price: 300, Images: []string{"img/one.jpg", "img/two.jpg"},
	})
	require.NoError(t, err)

	err = s.svc.DeleteProduct(context.Background(), caller, p.ID.String())
	require.NoError(t, err, "cleanup failure never fails the delete")
	require.NotContains(t, s.repo.byID, p.ID)
	require.Equal(t, []string{"img/one.jpg"}, s.remover.deleted)
}

func TestStockCheck(t *testing.T) {
	s := newSvcTest(t)
	caller := s.merchant()

	p, err := s.svc.AddProduct(context.Background(), caller, SaveProductRequest{
		Name: "Dates box", Price: 20, Stock: 5,
	})
	require.NoError(t, err)

	check, err := s.svc.StockCheck(context.Background(), p.ID.String(), 6)
	require.NoError(t, err)
	require.False(t, check.OK)
	require.Equal(t, 5, check.Available)

	check, err = s.svc.StockCheck(context.Background(), p.ID.String(), 5)
	require.NoError(t, err)
	require.True(t, check.OK)

	_, err = s.svc.StockCheck(context.Background(), p.ID.String(), 0)
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
}
