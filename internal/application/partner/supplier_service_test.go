package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/somvi/backend/internal/domain/partner"
	"github.com/somvi/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindActive(ctx context.Context) ([]partner.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestSupplierService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates supplier with commission", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		svc := NewSupplierService(repo)

		repo.On("Save", ctx, mock.Anything).Return(nil)

		commission := decimal.NewFromInt(10)
		resp, err := svc.Create(ctx, CreateSupplierRequest{
			Name:              "Hornbuild Traders",
			CommissionPercent: &commission,
		})

		require.NoError(t, err)
		assert.Equal(t, "Hornbuild Traders", resp.Name)
		assert.True(t, resp.CommissionPercent.Equal(commission))
		assert.True(t, resp.Active)
	})

	t.Run("rejects commission above 100", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		svc := NewSupplierService(repo)

		commission := decimal.NewFromInt(120)
		_, err := svc.Create(ctx, CreateSupplierRequest{
			Name:              "Hornbuild Traders",
			CommissionPercent: &commission,
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSupplierService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivates a supplier", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		svc := NewSupplierService(repo)

		supplier, err := partner.NewSupplier("Hornbuild Traders", "", "", decimal.Zero)
		require.NoError(t, err)

		repo.On("FindByID", ctx, supplier.ID).Return(supplier, nil)
		repo.On("Save", ctx, supplier).Return(nil)

		active := false
		resp, err := svc.Update(ctx, supplier.ID, UpdateSupplierRequest{Active: &active})

		require.NoError(t, err)
		assert.False(t, resp.Active)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		svc := NewSupplierService(repo)
		missing := uuid.New()

		repo.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(ctx, missing, UpdateSupplierRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSupplierService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("active only bypasses pagination", func(t *testing.T) {
		repo := new(MockSupplierRepository)
		svc := NewSupplierService(repo)

		supplier, err := partner.NewSupplier("Hornbuild Traders", "", "", decimal.Zero)
		require.NoError(t, err)

		repo.On("FindActive", ctx).Return([]partner.Supplier{*supplier}, nil)

		suppliers, total, err := svc.List(ctx, SupplierListFilter{ActiveOnly: true})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, suppliers, 1)
		repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})
}
