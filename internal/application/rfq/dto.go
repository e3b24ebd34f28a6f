package rfq

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/somvi/backend/internal/domain/rfq"
)

// SubmitRFQRequest represents a storefront submission. The client is
// identified by WhatsApp number and created on first contact.
type SubmitRFQRequest struct {
	ClientName  string               `json:"client_name" binding:"required,min=1,max=200"`
	Company     string               `json:"company" binding:"max=200"`
	WhatsApp    string               `json:"whatsapp" binding:"required"`
	ProjectName string               `json:"project_name" binding:"required,min=1,max=200"`
	Location    string               `json:"location" binding:"max=200"`
	Description string               `json:"description" binding:"max=2000"`
	Items       []SubmitRFQItemInput `json:"items"`
}

// SubmitRFQItemInput represents a cart line in the submission
type SubmitRFQItemInput struct {
	MaterialID   *uuid.UUID      `json:"material_id"`
	MaterialName string          `json:"material_name" binding:"required,min=1,max=200"`
	SomaliName   string          `json:"somali_name" binding:"max=200"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	Unit         string          `json:"unit" binding:"required,min=1,max=20"`
}

// QuoteInput is one supplier pricing column for an item
type QuoteInput struct {
	Slot       int             `json:"slot" binding:"required,min=1"`
	SupplierID *uuid.UUID      `json:"supplier_id"`
	BasePrice  decimal.Decimal `json:"base_price"`
	Markup     decimal.Decimal `json:"markup"`
}

// ItemPricingInput carries the quote columns for one RFQ item
type ItemPricingInput struct {
	ItemID uuid.UUID    `json:"item_id" binding:"required"`
	Quotes []QuoteInput `json:"quotes"`
}

// SavePricingRequest represents the admin pricing table save.
// Saving pricing moves a pending RFQ to QUOTED.
type SavePricingRequest struct {
	Items       []ItemPricingInput `json:"items"`
	DeliveryFee *decimal.Decimal   `json:"delivery_fee"`
	Taxes       *decimal.Decimal   `json:"taxes"`
}

// RFQListFilter represents filter options for the RFQ list
type RFQListFilter struct {
	Search    string      `form:"search"`
	ClientID  *uuid.UUID  `form:"client_id"`
	Status    *rfq.Status `form:"status"`
	StartDate *time.Time  `form:"start_date"`
	EndDate   *time.Time  `form:"end_date"`
	Page      int         `form:"page" binding:"min=0"`
	PageSize  int         `form:"page_size" binding:"min=0,max=100"`
	OrderBy   string      `form:"order_by"`
	OrderDir  string      `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// QuoteResponse is one supplier pricing column in API responses
type QuoteResponse struct {
	Slot           int             `json:"slot"`
	SupplierID     *uuid.UUID      `json:"supplier_id,omitempty"`
	BasePrice      decimal.Decimal `json:"base_price"`
	Markup         decimal.Decimal `json:"markup"`
	DisplayedPrice decimal.Decimal `json:"displayed_price"`
}

// ItemResponse represents an RFQ item in API responses
type ItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	MaterialID   *uuid.UUID      `json:"material_id,omitempty"`
	MaterialName string          `json:"material_name"`
	SomaliName   string          `json:"somali_name,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	Quotes       []QuoteResponse `json:"quotes"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Profit       decimal.Decimal `json:"profit"`
}

// RFQResponse represents a full RFQ in API responses
type RFQResponse struct {
	ID          uuid.UUID       `json:"id"`
	RFQNumber   string          `json:"rfq_number"`
	ClientID    uuid.UUID       `json:"client_id"`
	ClientName  string          `json:"client_name"`
	ProjectName string          `json:"project_name"`
	Description string          `json:"description,omitempty"`
	Items       []ItemResponse  `json:"items"`
	ItemCount   int             `json:"item_count"`
	Status      string          `json:"status"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Taxes       decimal.Decimal `json:"taxes"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// RFQListItemResponse represents an RFQ in list responses (less detail)
type RFQListItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	RFQNumber   string          `json:"rfq_number"`
	ClientID    uuid.UUID       `json:"client_id"`
	ClientName  string          `json:"client_name"`
	ProjectName string          `json:"project_name"`
	ItemCount   int             `json:"item_count"`
	Status      string          `json:"status"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StatusSummary represents dashboard counts per RFQ status
type StatusSummary struct {
	Pending   int64 `json:"pending"`
	Quoted    int64 `json:"quoted"`
	Completed int64 `json:"completed"`
	Total     int64 `json:"total"`
}

// ToItemResponse converts a domain item to a response DTO
func ToItemResponse(item *rfq.Item) ItemResponse {
	quotes := make([]QuoteResponse, len(item.Quotes))
	for i, q := range item.Quotes {
		quotes[i] = QuoteResponse{
			Slot:           q.Slot,
			SupplierID:     q.SupplierID,
			BasePrice:      q.BasePrice,
			Markup:         q.Markup,
			DisplayedPrice: rfq.DisplayedPrice(q),
		}
	}

	return ItemResponse{
		ID:           item.ID,
		MaterialID:   item.MaterialID,
		MaterialName: item.MaterialName,
		SomaliName:   item.SomaliName,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		Quotes:       quotes,
		Subtotal:     rfq.ItemSubtotal(*item),
		Profit:       rfq.ItemProfit(*item),
	}
}

// ToRFQResponse converts a domain RFQ to a response DTO
func ToRFQResponse(r *rfq.RFQ) RFQResponse {
	items := make([]ItemResponse, len(r.Items))
	for i := range r.Items {
		items[i] = ToItemResponse(&r.Items[i])
	}

	return RFQResponse{
		ID:          r.ID,
		RFQNumber:   r.RFQNumber,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		ProjectName: r.ProjectName,
		Description: r.Description,
		Items:       items,
		ItemCount:   r.ItemCount(),
		Status:      string(r.Status),
		DeliveryFee: r.DeliveryFee,
		Taxes:       r.Taxes,
		Subtotal:    r.Subtotal,
		TotalProfit: r.TotalProfit,
		GrandTotal:  r.GrandTotal,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Version:     r.Version,
	}
}

// ToRFQListItemResponse converts a domain RFQ to a list response DTO
func ToRFQListItemResponse(r *rfq.RFQ) RFQListItemResponse {
	return RFQListItemResponse{
		ID:          r.ID,
		RFQNumber:   r.RFQNumber,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		ProjectName: r.ProjectName,
		ItemCount:   r.ItemCount(),
		Status:      string(r.Status),
		TotalProfit: r.TotalProfit,
		GrandTotal:  r.GrandTotal,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToRFQListItemResponses converts a slice of domain RFQs to list responses
func ToRFQListItemResponses(rfqs []rfq.RFQ) []RFQListItemResponse {
	responses := make([]RFQListItemResponse, len(rfqs))
	for i := range rfqs {
		responses[i] = ToRFQListItemResponse(&rfqs[i])
	}
	return responses
}
