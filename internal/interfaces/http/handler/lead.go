package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	crmapp "github.com/somvi/backend/internal/application/crm"
)

// LeadHandler handles the follow-up pipeline endpoints. Leads are
// created by RFQ submission, not through the API.
type LeadHandler struct {
	BaseHandler
	leadService *crmapp.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *crmapp.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// List returns leads with filtering and pagination
func (h *LeadHandler) List(c *gin.Context) {
	var filter crmapp.LeadListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	leads, total, err := h.leadService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, leads, total, filter.Page, filter.PageSize)
}

// GetByID returns a single lead
func (h *LeadHandler) GetByID(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}

	resp, err := h.leadService.GetByID(c.Request.Context(), leadID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetByRFQ returns the lead linked to an RFQ
func (h *LeadHandler) GetByRFQ(c *gin.Context) {
	rfqID, err := uuid.Parse(c.Param("rfq_id"))
	if err != nil {
		h.BadRequest(c, "Invalid RFQ ID format")
		return
	}

	resp, err := h.leadService.GetByRFQ(c.Request.Context(), rfqID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update updates a lead's stage, location or notes
func (h *LeadHandler) Update(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}

	var req crmapp.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.leadService.Update(c.Request.Context(), leadID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a lead
func (h *LeadHandler) Delete(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid lead ID format")
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), leadID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
