package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/somvi/backend/internal/domain/catalog"
)

// CreateMaterialRequest represents a request to create a material
type CreateMaterialRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	SomaliName  string `json:"somali_name" binding:"required,min=1,max=200"`
	Category    string `json:"category" binding:"required,min=1,max=100"`
	Subcategory string `json:"subcategory" binding:"max=100"`
	Unit        string `json:"unit" binding:"required,min=1,max=20"`
	Description string `json:"description" binding:"max=2000"`
	ImageURL    string `json:"image_url" binding:"max=500"`
}

// UpdateMaterialRequest represents a request to update a material
type UpdateMaterialRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	SomaliName  *string `json:"somali_name" binding:"omitempty,min=1,max=200"`
	Category    *string `json:"category" binding:"omitempty,min=1,max=100"`
	Subcategory *string `json:"subcategory" binding:"omitempty,max=100"`
	Unit        *string `json:"unit" binding:"omitempty,min=1,max=20"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=500"`
	Active      *bool   `json:"active"`
}

// MaterialListFilter represents filter options for the catalog listing
type MaterialListFilter struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page" binding:"min=0"`
	PageSize   int    `form:"page_size" binding:"min=0,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// MaterialResponse represents a material in API responses
type MaterialResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	SomaliName  string    `json:"somali_name"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Unit        string    `json:"unit"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupplierOfferRequest represents a standing supplier offer on a material
type SupplierOfferRequest struct {
	SupplierID   uuid.UUID       `json:"supplier_id" binding:"required"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	LeadTimeDays int             `json:"lead_time_days" binding:"min=0"`
}

// SupplierOfferResponse represents a supplier offer in API responses
type SupplierOfferResponse struct {
	ID           uuid.UUID       `json:"id"`
	MaterialID   uuid.UUID       `json:"material_id"`
	SupplierID   uuid.UUID       `json:"supplier_id"`
	Price        decimal.Decimal `json:"price"`
	LeadTimeDays int             `json:"lead_time_days"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToMaterialResponse converts a domain material to a response DTO
func ToMaterialResponse(m *catalog.Material) MaterialResponse {
	return MaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		SomaliName:  m.SomaliName,
		Category:    m.Category,
		Subcategory: m.Subcategory,
		Unit:        m.Unit,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToMaterialResponses converts a slice of domain materials to response DTOs
func ToMaterialResponses(materials []catalog.Material) []MaterialResponse {
	responses := make([]MaterialResponse, len(materials))
	for i := range materials {
		responses[i] = ToMaterialResponse(&materials[i])
	}
	return responses
}

// ToSupplierOfferResponse converts a domain offer to a response DTO
func ToSupplierOfferResponse(o *catalog.MaterialSupplier) SupplierOfferResponse {
	return SupplierOfferResponse{
		ID:           o.ID,
		MaterialID:   o.MaterialID,
		SupplierID:   o.SupplierID,
		Price:        o.SupplierPrice,
		LeadTimeDays: o.LeadTimeDays,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// ToSupplierOfferResponses converts a slice of domain offers to response DTOs
func ToSupplierOfferResponses(offers []catalog.MaterialSupplier) []SupplierOfferResponse {
	responses := make([]SupplierOfferResponse, len(offers))
	for i := range offers {
		responses[i] = ToSupplierOfferResponse(&offers[i])
	}
	return responses
}
