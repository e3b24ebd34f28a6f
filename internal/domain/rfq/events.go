package rfq

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/somvi/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeRFQ = "RFQ"

// Event type constants
const (
	EventTypeRFQSubmitted = "RFQSubmitted"
	EventTypeRFQQuoted    = "RFQQuoted"
	EventTypeRFQCompleted = "RFQCompleted"
)

// ItemInfo represents line item information for events
type ItemInfo struct {
	ItemID       uuid.UUID       `json:"item_id"`
	MaterialID   *uuid.UUID      `json:"material_id,omitempty"`
	MaterialName string          `json:"material_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
}

func itemInfos(items []Item) []ItemInfo {
	infos := make([]ItemInfo, len(items))
	for i, item := range items {
		infos[i] = ItemInfo{
			ItemID:       item.ID,
			MaterialID:   item.MaterialID,
			MaterialName: item.MaterialName,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
		}
	}
	return infos
}

// RFQSubmittedEvent is raised when a new RFQ is submitted.
// Notification handlers use it to build the WhatsApp follow-up link.
type RFQSubmittedEvent struct {
	shared.BaseDomainEvent
	RFQID       uuid.UUID  `json:"rfq_id"`
	RFQNumber   string     `json:"rfq_number"`
	ClientID    uuid.UUID  `json:"client_id"`
	ClientName  string     `json:"client_name"`
	ProjectName string     `json:"project_name"`
	Items       []ItemInfo `json:"items"`
}

// NewRFQSubmittedEvent creates a new RFQSubmittedEvent
func NewRFQSubmittedEvent(r *RFQ) *RFQSubmittedEvent {
	return &RFQSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRFQSubmitted, AggregateTypeRFQ, r.ID),
		RFQID:           r.ID,
		RFQNumber:       r.RFQNumber,
		ClientID:        r.ClientID,
		ClientName:      r.ClientName,
		ProjectName:     r.ProjectName,
		Items:           itemInfos(r.Items),
	}
}

// EventType returns the event type name
func (e *RFQSubmittedEvent) EventType() string {
	return EventTypeRFQSubmitted
}

// RFQQuotedEvent is raised when supplier pricing is saved on an RFQ
type RFQQuotedEvent struct {
	shared.BaseDomainEvent
	RFQID       uuid.UUID       `json:"rfq_id"`
	RFQNumber   string          `json:"rfq_number"`
	ClientID    uuid.UUID       `json:"client_id"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

// NewRFQQuotedEvent creates a new RFQQuotedEvent
func NewRFQQuotedEvent(r *RFQ) *RFQQuotedEvent {
	return &RFQQuotedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRFQQuoted, AggregateTypeRFQ, r.ID),
		RFQID:           r.ID,
		RFQNumber:       r.RFQNumber,
		ClientID:        r.ClientID,
		Subtotal:        r.Subtotal,
		TotalProfit:     r.TotalProfit,
		GrandTotal:      r.GrandTotal,
	}
}

// EventType returns the event type name
func (e *RFQQuotedEvent) EventType() string {
	return EventTypeRFQQuoted
}

// RFQCompletedEvent is raised when an RFQ is marked completed.
// Finance reporting reads completed RFQs only.
type RFQCompletedEvent struct {
	shared.BaseDomainEvent
	RFQID       uuid.UUID       `json:"rfq_id"`
	RFQNumber   string          `json:"rfq_number"`
	ClientID    uuid.UUID       `json:"client_id"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	CompletedAt time.Time       `json:"completed_at"`
}

// NewRFQCompletedEvent creates a new RFQCompletedEvent
func NewRFQCompletedEvent(r *RFQ) *RFQCompletedEvent {
	completedAt := time.Now()
	if r.CompletedAt != nil {
		completedAt = *r.CompletedAt
	}
	return &RFQCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRFQCompleted, AggregateTypeRFQ, r.ID),
		RFQID:           r.ID,
		RFQNumber:       r.RFQNumber,
		ClientID:        r.ClientID,
		GrandTotal:      r.GrandTotal,
		TotalProfit:     r.TotalProfit,
		CompletedAt:     completedAt,
	}
}

// EventType returns the event type name
func (e *RFQCompletedEvent) EventType() string {
	return EventTypeRFQCompleted
}
