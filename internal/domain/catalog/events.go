package catalog

import (
	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeMaterial = "Material"

// Event type constants
const (
	EventTypeMaterialCreated = "MaterialCreated"
	EventTypeMaterialUpdated = "MaterialUpdated"
)

// MaterialCreatedEvent is raised when a material is added to the catalog
type MaterialCreatedEvent struct {
	shared.BaseDomainEvent
	MaterialID uuid.UUID `json:"material_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
}

// NewMaterialCreatedEvent creates a new MaterialCreatedEvent
func NewMaterialCreatedEvent(m *Material) *MaterialCreatedEvent {
	return &MaterialCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaterialCreated, AggregateTypeMaterial, m.ID),
		MaterialID:      m.ID,
		Name:            m.Name,
		Category:        m.Category,
	}
}

// EventType returns the event type name
func (e *MaterialCreatedEvent) EventType() string {
	return EventTypeMaterialCreated
}

// MaterialUpdatedEvent is raised when a material's details change
type MaterialUpdatedEvent struct {
	shared.BaseDomainEvent
	MaterialID uuid.UUID `json:"material_id"`
	Name       string    `json:"name"`
}

// NewMaterialUpdatedEvent creates a new MaterialUpdatedEvent
func NewMaterialUpdatedEvent(m *Material) *MaterialUpdatedEvent {
	return &MaterialUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMaterialUpdated, AggregateTypeMaterial, m.ID),
		MaterialID:      m.ID,
		Name:            m.Name,
	}
}

// EventType returns the event type name
func (e *MaterialUpdatedEvent) EventType() string {
	return EventTypeMaterialUpdated
}
