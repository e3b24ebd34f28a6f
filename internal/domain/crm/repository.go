package crm

import (
	"context"

	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/shared"
)

// LeadRepository defines the interface for lead persistence
type LeadRepository interface {
	// FindByID finds a lead by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Lead, error)

	// FindAll finds all leads with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Lead, error)

	// FindByStage finds leads in a pipeline stage
	FindByStage(ctx context.Context, stage LeadStage, filter shared.Filter) ([]Lead, error)

	// FindByRFQ finds the lead linked to an RFQ
	FindByRFQ(ctx context.Context, rfqID uuid.UUID) (*Lead, error)

	// Save creates or updates a lead
	Save(ctx context.Context, lead *Lead) error

	// Delete removes a lead
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts leads with optional filters
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
