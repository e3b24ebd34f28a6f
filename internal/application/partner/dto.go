package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/somvi/backend/internal/domain/partner"
)

// ==================== Client DTOs ====================

// CreateClientRequest represents a request to create a client
type CreateClientRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Company  string `json:"company" binding:"max=200"`
	WhatsApp string `json:"whatsapp" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Company *string `json:"company" binding:"omitempty,max=200"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

// ClientListFilter represents filter options for the client list
type ClientListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Company      string    `json:"company,omitempty"`
	WhatsApp     string    `json:"whatsapp"`
	WhatsAppLink string    `json:"whatsapp_link"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain client to a response DTO
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Company:      c.Company,
		WhatsApp:     c.WhatsApp,
		WhatsAppLink: c.WhatsAppLink(),
		Email:        c.Email,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToClientResponses converts a slice of domain clients to response DTOs
func ToClientResponses(clients []partner.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}

// ==================== Supplier DTOs ====================

// CreateSupplierRequest represents a request to create a supplier
type CreateSupplierRequest struct {
	Name              string           `json:"name" binding:"required,min=1,max=200"`
	Company           string           `json:"company" binding:"max=200"`
	Contact           string           `json:"contact" binding:"max=50"`
	Email             string           `json:"email" binding:"omitempty,email"`
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Company           *string          `json:"company" binding:"omitempty,max=200"`
	Contact           *string          `json:"contact" binding:"omitempty,max=50"`
	Email             *string          `json:"email" binding:"omitempty,email"`
	CommissionPercent *decimal.Decimal `json:"commission_percent"`
	Active            *bool            `json:"active"`
}

// SupplierListFilter represents filter options for the supplier list
type SupplierListFilter struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page" binding:"min=0"`
	PageSize   int    `form:"page_size" binding:"min=0,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Company           string          `json:"company,omitempty"`
	Contact           string          `json:"contact,omitempty"`
	Email             string          `json:"email,omitempty"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	Active            bool            `json:"active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToSupplierResponse converts a domain supplier to a response DTO
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:                s.ID,
		Name:              s.Name,
		Company:           s.Company,
		Contact:           s.Contact,
		Email:             s.Email,
		CommissionPercent: s.CommissionPercent,
		Active:            s.Active,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ToSupplierResponses converts a slice of domain suppliers to response DTOs
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
