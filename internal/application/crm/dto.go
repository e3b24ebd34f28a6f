package crm

import (
	"time"

	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/crm"
)

// LeadListFilter represents filter options for the lead pipeline list
type LeadListFilter struct {
	Search   string         `form:"search"`
	Stage    *crm.LeadStage `form:"stage"`
	Page     int            `form:"page" binding:"min=0"`
	PageSize int            `form:"page_size" binding:"min=0,max=100"`
	OrderBy  string         `form:"order_by"`
	OrderDir string         `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// UpdateLeadRequest represents a pipeline update on a lead
type UpdateLeadRequest struct {
	Stage    *crm.LeadStage `json:"stage"`
	Location *string        `json:"location" binding:"omitempty,max=200"`
	Notes    *string        `json:"notes" binding:"omitempty,max=2000"`
}

// LeadResponse represents a lead in API responses
type LeadResponse struct {
	ID          uuid.UUID  `json:"id"`
	ClientName  string     `json:"client_name"`
	WhatsApp    string     `json:"whatsapp"`
	ProjectName string     `json:"project_name,omitempty"`
	Location    string     `json:"location,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	RFQID       *uuid.UUID `json:"rfq_id,omitempty"`
	Stage       string     `json:"stage"`
	Open        bool       `json:"open"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToLeadResponse converts a domain lead to a response DTO
func ToLeadResponse(l *crm.Lead) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		ClientName:  l.ClientName,
		WhatsApp:    l.WhatsApp,
		ProjectName: l.ProjectName,
		Location:    l.Location,
		Notes:       l.Notes,
		RFQID:       l.RFQID,
		Stage:       string(l.Stage),
		Open:        l.IsOpen(),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// ToLeadResponses converts a slice of domain leads to response DTOs
func ToLeadResponses(leads []crm.Lead) []LeadResponse {
	responses := make([]LeadResponse, len(leads))
	for i := range leads {
		responses[i] = ToLeadResponse(&leads[i])
	}
	return responses
}
