package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	reportapp "github.com/somvi/backend/internal/application/report"
	"github.com/somvi/backend/internal/infrastructure/export"
)

// reportDateLayout is the accepted format for from/to query parameters
const reportDateLayout = "2006-01-02"

// ReportHandler handles reporting endpoints over completed RFQs
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
	currency      string
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *reportapp.ReportService, currency string) *ReportHandler {
	return &ReportHandler{reportService: reportService, currency: currency}
}

// parseReportRange reads the from/to query parameters. The range
// defaults to the last 30 days; "to" is extended to the end of its day
// so a date-only upper bound includes that day's completions.
func parseReportRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(reportDateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q, expected YYYY-MM-DD", v)
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(reportDateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q, expected YYYY-MM-DD", v)
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("to date must not be before from date")
	}
	return from, to, nil
}

// CompletedOrders returns the completed-orders roll-up for a date range
func (h *ReportHandler) CompletedOrders(c *gin.Context) {
	from, to, err := parseReportRange(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	report, err := h.reportService.CompletedOrders(c.Request.Context(), from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}

// Finance returns the finance summary for a date range
func (h *ReportHandler) Finance(c *gin.Context) {
	from, to, err := parseReportRange(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.reportService.Finance(c.Request.Context(), from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// ExportCompletedOrdersXLSX renders the completed-orders report as an
// Excel workbook download
func (h *ReportHandler) ExportCompletedOrdersXLSX(c *gin.Context) {
	from, to, err := parseReportRange(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	report, err := h.reportService.CompletedOrders(c.Request.Context(), from, to)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	workbook, err := export.GenerateCompletedOrdersXLSX(report, h.currency)
	if err != nil {
		h.InternalError(c, "Failed to generate report workbook")
		return
	}

	filename := fmt.Sprintf("completed-orders-%s-%s.xlsx",
		from.Format(reportDateLayout), to.Format(reportDateLayout))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}
