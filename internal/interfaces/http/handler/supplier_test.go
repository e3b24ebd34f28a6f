package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	partnerapp "github.com/somvi/backend/internal/application/partner"
	"github.com/somvi/backend/internal/domain/partner"
	"github.com/somvi/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSupplierRepository implements partner.SupplierRepository for testing
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

var _ partner.SupplierRepository = (*MockSupplierRepository)(nil)

func setupSupplierTestRouter() (*gin.Engine, *MockSupplierRepository, *SupplierHandler) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockSupplierRepository)
	service := partnerapp.NewSupplierService(mockRepo)
	handler := NewSupplierHandler(service)

	router := gin.New()
	return router, mockRepo, handler
}

func createTestSupplier(t *testing.T) *partner.Supplier {
	t.Helper()

	supplier, err := partner.NewSupplier("Hormuud Traders", "Hormuud Trading Co", "+252615987654", decimal.NewFromInt(5))
	assert.NoError(t, err)
	return supplier
}

func TestSupplierHandler_Create(t *testing.T) {
	t.Run("should create supplier with commission", func(t *testing.T) {
		router, mockRepo, handler := setupSupplierTestRouter()

		router.POST("/suppliers", handler.Create)

		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Supplier")).
			Return(nil)

		commission := decimal.NewFromInt(5)
		reqBody := partnerapp.CreateSupplierRequest{
			Name:              "Hormuud Traders",
			Company:           "Hormuud Trading Co",
			Contact:           "+252615987654",
			CommissionPercent: &commission,
		}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/suppliers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		data := response["data"].(map[string]interface{})
		assert.Equal(t, "5", data["commission_percent"])
		assert.Equal(t, true, data["active"])

		mockRepo.AssertExpectations(t)
	})

	t.Run("should reject a negative commission", func(t *testing.T) {
		router, _, handler := setupSupplierTestRouter()

		router.POST("/suppliers", handler.Create)

		commission := decimal.NewFromInt(-1)
		reqBody := partnerapp.CreateSupplierRequest{
			Name:              "Hormuud Traders",
			CommissionPercent: &commission,
		}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPost, "/suppliers", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSupplierHandler_List(t *testing.T) {
	router, mockRepo, handler := setupSupplierTestRouter()

	router.GET("/suppliers", handler.List)

	suppliers := []partner.Supplier{*createTestSupplier(t)}
	mockRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return(suppliers, nil)
	mockRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return(int64(1), nil)

	req, _ := http.NewRequest(http.MethodGet, "/suppliers?active_only=true", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	mockRepo.AssertExpectations(t)
}

func TestSupplierHandler_Update(t *testing.T) {
	t.Run("should deactivate a supplier", func(t *testing.T) {
		router, mockRepo, handler := setupSupplierTestRouter()

		supplier := createTestSupplier(t)

		router.PUT("/suppliers/:id", handler.Update)

		mockRepo.On("FindByID", mock.Anything, supplier.ID).
			Return(supplier, nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Supplier")).
			Return(nil)

		active := false
		reqBody := partnerapp.UpdateSupplierRequest{Active: &active}
		body, _ := json.Marshal(reqBody)

		req, _ := http.NewRequest(http.MethodPut, "/suppliers/"+supplier.ID.String(), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		data := response["data"].(map[string]interface{})
		assert.Equal(t, false, data["active"])

		mockRepo.AssertExpectations(t)
	})

	t.Run("should return 404 for non-existent supplier", func(t *testing.T) {
		router, mockRepo, handler := setupSupplierTestRouter()

		supplierID := uuid.New()

		router.PUT("/suppliers/:id", handler.Update)

		mockRepo.On("FindByID", mock.Anything, supplierID).
			Return(nil, shared.ErrNotFound)

		body := []byte(`{"name":"New Name"}`)

		req, _ := http.NewRequest(http.MethodPut, "/suppliers/"+supplierID.String(), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		mockRepo.AssertExpectations(t)
	})
}

func TestSupplierHandler_Delete(t *testing.T) {
	router, mockRepo, handler := setupSupplierTestRouter()

	supplier := createTestSupplier(t)

	router.DELETE("/suppliers/:id", handler.Delete)

	mockRepo.On("FindByID", mock.Anything, supplier.ID).
		Return(supplier, nil)
	mockRepo.On("Delete", mock.Anything, supplier.ID).
		Return(nil)

	req, _ := http.NewRequest(http.MethodDelete, "/suppliers/"+supplier.ID.String(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	mockRepo.AssertExpectations(t)
}
