package partner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSupplier(t *testing.T) *Supplier {
	s, err := NewSupplier("Banadir Cement Co", "Banadir Group", "+252611112222", decimal.NewFromInt(10))
	require.NoError(t, err)
	return s
}

func TestNewSupplier(t *testing.T) {
	t.Run("creates active supplier", func(t *testing.T) {
		s := createTestSupplier(t)
		assert.True(t, s.IsActive())
		assert.True(t, s.CommissionPercent.Equal(decimal.NewFromInt(10)))

		events := s.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeSupplierCreated, events[0].EventType())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewSupplier("", "", "", decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative commission", func(t *testing.T) {
		_, err := NewSupplier("Banadir Cement Co", "", "", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("rejects commission above 100", func(t *testing.T) {
		_, err := NewSupplier("Banadir Cement Co", "", "", decimal.NewFromInt(101))
		assert.Error(t, err)
	})
}

func TestSupplier_Update(t *testing.T) {
	s := createTestSupplier(t)

	require.NoError(t, s.Update("Banadir Cement", "Banadir Group Ltd", "+252613334444"))
	assert.Equal(t, "Banadir Cement", s.Name)

	assert.Error(t, s.Update("", "", ""))
}

func TestSupplier_SetCommissionPercent(t *testing.T) {
	s := createTestSupplier(t)

	require.NoError(t, s.SetCommissionPercent(decimal.NewFromFloat(12.5)))
	assert.True(t, s.CommissionPercent.Equal(decimal.NewFromFloat(12.5)))

	assert.Error(t, s.SetCommissionPercent(decimal.NewFromInt(-5)))
}

func TestSupplier_ActivateDeactivate(t *testing.T) {
	s := createTestSupplier(t)

	assert.Error(t, s.Activate())

	require.NoError(t, s.Deactivate())
	assert.False(t, s.IsActive())
	assert.Error(t, s.Deactivate())

	require.NoError(t, s.Activate())
	assert.True(t, s.IsActive())
}

func TestSupplier_CommissionOn(t *testing.T) {
	s := createTestSupplier(t)

	commission := s.CommissionOn(decimal.NewFromInt(200))
	assert.True(t, commission.Equal(decimal.NewFromInt(20)))
}
