package partner

import (
	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeClient   = "Client"
	AggregateTypeSupplier = "Supplier"
)

// Event type constants
const (
	EventTypeClientCreated   = "ClientCreated"
	EventTypeClientUpdated   = "ClientUpdated"
	EventTypeSupplierCreated = "SupplierCreated"
	EventTypeSupplierUpdated = "SupplierUpdated"
)

// ClientCreatedEvent is raised when a new client is registered
type ClientCreatedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
	WhatsApp string    `json:"whatsapp"`
}

// NewClientCreatedEvent creates a new ClientCreatedEvent
func NewClientCreatedEvent(c *Client) *ClientCreatedEvent {
	return &ClientCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientCreated, AggregateTypeClient, c.ID),
		ClientID:        c.ID,
		Name:            c.Name,
		WhatsApp:        c.WhatsApp,
	}
}

// EventType returns the event type name
func (e *ClientCreatedEvent) EventType() string {
	return EventTypeClientCreated
}

// ClientUpdatedEvent is raised when a client's details change
type ClientUpdatedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
	Company  string    `json:"company"`
}

// NewClientUpdatedEvent creates a new ClientUpdatedEvent
func NewClientUpdatedEvent(c *Client) *ClientUpdatedEvent {
	return &ClientUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientUpdated, AggregateTypeClient, c.ID),
		ClientID:        c.ID,
		Name:            c.Name,
		Company:         c.Company,
	}
}

// EventType returns the event type name
func (e *ClientUpdatedEvent) EventType() string {
	return EventTypeClientUpdated
}

// SupplierCreatedEvent is raised when a new supplier is registered
type SupplierCreatedEvent struct {
	shared.BaseDomainEvent
	SupplierID uuid.UUID `json:"supplier_id"`
	Name       string    `json:"name"`
}

// NewSupplierCreatedEvent creates a new SupplierCreatedEvent
func NewSupplierCreatedEvent(s *Supplier) *SupplierCreatedEvent {
	return &SupplierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierCreated, AggregateTypeSupplier, s.ID),
		SupplierID:      s.ID,
		Name:            s.Name,
	}
}

// EventType returns the event type name
func (e *SupplierCreatedEvent) EventType() string {
	return EventTypeSupplierCreated
}

// SupplierUpdatedEvent is raised when a supplier's details change
type SupplierUpdatedEvent struct {
	shared.BaseDomainEvent
	SupplierID uuid.UUID `json:"supplier_id"`
	Name       string    `json:"name"`
}

// NewSupplierUpdatedEvent creates a new SupplierUpdatedEvent
func NewSupplierUpdatedEvent(s *Supplier) *SupplierUpdatedEvent {
	return &SupplierUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierUpdated, AggregateTypeSupplier, s.ID),
		SupplierID:      s.ID,
		Name:            s.Name,
	}
}

// EventType returns the event type name
func (e *SupplierUpdatedEvent) EventType() string {
	return EventTypeSupplierUpdated
}
