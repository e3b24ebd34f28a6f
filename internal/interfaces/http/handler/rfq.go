package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	rfqapp "github.com/somvi/backend/internal/application/rfq"
	"github.com/somvi/backend/internal/infrastructure/export"
)

// RFQHandler handles RFQ endpoints. Submission is the public
// storefront entry point; everything else is the admin workflow.
type RFQHandler struct {
	BaseHandler
	rfqService *rfqapp.RFQService
	company    export.CompanyInfo
}

// NewRFQHandler creates a new RFQ handler
func NewRFQHandler(rfqService *rfqapp.RFQService, company export.CompanyInfo) *RFQHandler {
	return &RFQHandler{rfqService: rfqService, company: company}
}

// Submit accepts a storefront cart submission and creates an RFQ.
// The client record is found or created by WhatsApp number.
func (h *RFQHandler) Submit(c *gin.Context) {
	var req rfqapp.SubmitRFQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.rfqService.Submit(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns RFQs with filtering and pagination
func (h *RFQHandler) List(c *gin.Context) {
	var filter rfqapp.RFQListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	// Set defaults
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	rfqs, total, err := h.rfqService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, rfqs, total, filter.Page, filter.PageSize)
}

// GetByID returns a single RFQ with its full pricing table
func (h *RFQHandler) GetByID(c *gin.Context) {
	rfqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid RFQ ID format")
		return
	}

	resp, err := h.rfqService.GetByID(c.Request.Context(), rfqID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetByNumber returns a single RFQ looked up by its RFQ number
func (h *RFQHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "RFQ number is required")
		return
	}

	resp, err := h.rfqService.GetByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// SavePricing saves the supplier pricing table for a pending or
// quoted RFQ. Saving pricing on a pending RFQ moves it to QUOTED.
func (h *RFQHandler) SavePricing(c *gin.Context) {
	rfqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid RFQ ID format")
		return
	}

	var req rfqapp.SavePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.rfqService.SavePricing(c.Request.Context(), rfqID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Complete marks a quoted RFQ as completed
func (h *RFQHandler) Complete(c *gin.Context) {
	rfqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid RFQ ID format")
		return
	}

	resp, err := h.rfqService.Complete(c.Request.Context(), rfqID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes an RFQ
func (h *RFQHandler) Delete(c *gin.Context) {
	rfqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid RFQ ID format")
		return
	}

	if err := h.rfqService.Delete(c.Request.Context(), rfqID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// StatusSummary returns dashboard counts per RFQ status
func (h *RFQHandler) StatusSummary(c *gin.Context) {
	summary, err := h.rfqService.GetStatusSummary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// QuotationPDF renders the quotation document for an RFQ as a PDF download
func (h *RFQHandler) QuotationPDF(c *gin.Context) {
	rfqID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid RFQ ID format")
		return
	}

	quote, err := h.rfqService.GetAggregate(c.Request.Context(), rfqID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	data := export.NewQuotationData(quote, h.company)
	pdf, err := export.GenerateQuotationPDF(data)
	if err != nil {
		h.InternalError(c, "Failed to generate quotation PDF")
		return
	}

	filename := fmt.Sprintf("%s.pdf", quote.RFQNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
