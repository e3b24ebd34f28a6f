package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	reportapp "github.com/somvi/backend/internal/application/report"
	"github.com/somvi/backend/internal/domain/rfq"
	"github.com/somvi/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupReportTestRouter() (*gin.Engine, *MockRFQRepository, *ReportHandler) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockRFQRepository)
	service := reportapp.NewReportService(mockRepo)
	handler := NewReportHandler(service, "USD")

	router := gin.New()
	return router, mockRepo, handler
}

// createCompletedTestRFQ builds an RFQ that went through the full
// pricing workflow: one item of 100 bags quoted at 6.50 base plus 0.75
// markup, so total value 725 and profit 75.
func createCompletedTestRFQ(t *testing.T, rfqNumber string) *rfq.RFQ {
	t.Helper()

	quote := createTestRFQ(t, rfqNumber)
	col, err := rfq.NewSupplierQuote(1,
		valueobject.NewMoneyUSDFromFloat(6.50),
		valueobject.NewMoneyUSDFromFloat(0.75),
	)
	assert.NoError(t, err)
	assert.NoError(t, quote.UpdateItemQuotes(quote.Items[0].ID, []rfq.SupplierQuote{col}))
	assert.NoError(t, quote.MarkQuoted())
	assert.NoError(t, quote.Complete())
	return quote
}

func TestReportHandler_CompletedOrders(t *testing.T) {
	t.Run("should summarize completed orders in range", func(t *testing.T) {
		router, mockRepo, handler := setupReportTestRouter()

		router.GET("/reports/completed-orders", handler.CompletedOrders)

		completed := createCompletedTestRFQ(t, "SOMVI-RFQ-2026-00010")
		mockRepo.On("FindCompletedBetween", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]rfq.RFQ{*completed}, nil)

		req, _ := http.NewRequest(http.MethodGet, "/reports/completed-orders?from=2026-01-01&to=2026-12-31", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, true, response["success"])

		data := response["data"].(map[string]interface{})
		assert.Equal(t, float64(1), data["order_count"])
		assert.Equal(t, "725", data["total_value"])
		assert.Equal(t, "75", data["profit"])

		orders := data["orders"].([]interface{})
		assert.Len(t, orders, 1)
		row := orders[0].(map[string]interface{})
		assert.Equal(t, "SOMVI-RFQ-2026-00010", row["rfq_number"])
		assert.Equal(t, "Axmed Cali", row["client_name"])
		assert.NotNil(t, row["completed_at"])

		mockRepo.AssertExpectations(t)
	})

	t.Run("should return empty report when nothing completed", func(t *testing.T) {
		router, mockRepo, handler := setupReportTestRouter()

		router.GET("/reports/completed-orders", handler.CompletedOrders)

		mockRepo.On("FindCompletedBetween", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]rfq.RFQ{}, nil)

		req, _ := http.NewRequest(http.MethodGet, "/reports/completed-orders", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		data := response["data"].(map[string]interface{})
		assert.Equal(t, float64(0), data["order_count"])
		assert.Equal(t, "0", data["total_value"])
	})

	t.Run("should reject a malformed from date", func(t *testing.T) {
		router, _, handler := setupReportTestRouter()

		router.GET("/reports/completed-orders", handler.CompletedOrders)

		req, _ := http.NewRequest(http.MethodGet, "/reports/completed-orders?from=01-06-2026", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should reject a range ending before it starts", func(t *testing.T) {
		router, _, handler := setupReportTestRouter()

		router.GET("/reports/completed-orders", handler.CompletedOrders)

		req, _ := http.NewRequest(http.MethodGet, "/reports/completed-orders?from=2026-06-01&to=2026-05-01", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportHandler_Finance(t *testing.T) {
	router, mockRepo, handler := setupReportTestRouter()

	router.GET("/reports/finance", handler.Finance)

	completed := createCompletedTestRFQ(t, "SOMVI-RFQ-2026-00011")
	mockRepo.On("FindCompletedBetween", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]rfq.RFQ{*completed}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/reports/finance?from=2026-01-01&to=2026-12-31", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "725", data["revenue"])
	assert.Equal(t, "650", data["costs"])
	assert.Equal(t, "75", data["profit"])
	assert.Equal(t, "7.5", data["commission"])
	assert.Equal(t, float64(1), data["completed_count"])

	mockRepo.AssertExpectations(t)
}

func TestReportHandler_ExportCompletedOrdersXLSX(t *testing.T) {
	router, mockRepo, handler := setupReportTestRouter()

	router.GET("/reports/completed-orders/export", handler.ExportCompletedOrdersXLSX)

	completed := createCompletedTestRFQ(t, "SOMVI-RFQ-2026-00012")
	mockRepo.On("FindCompletedBetween", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]rfq.RFQ{*completed}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/reports/completed-orders/export?from=2026-01-01&to=2026-01-31", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "completed-orders-2026-01-01-2026-01-31.xlsx")
	// xlsx workbooks are zip archives
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))

	mockRepo.AssertExpectations(t)
}
