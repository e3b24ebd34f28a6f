package rfq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/shared"
)

// Repository defines the interface for RFQ persistence.
// Implementations load every RFQ together with its line items; an RFQ
// without its items is never a valid read.
type Repository interface {
	// FindByID finds an RFQ by ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*RFQ, error)

	// FindByNumber finds an RFQ by its RFQ number
	FindByNumber(ctx context.Context, rfqNumber string) (*RFQ, error)

	// FindAll finds all RFQs with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]RFQ, error)

	// FindByClient finds RFQs belonging to a client
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]RFQ, error)

	// FindByStatus finds RFQs by status
	FindByStatus(ctx context.Context, status Status, filter shared.Filter) ([]RFQ, error)

	// FindCompletedBetween finds completed RFQs with a completion time
	// inside the given range, for finance reporting
	FindCompletedBetween(ctx context.Context, from, to time.Time) ([]RFQ, error)

	// Save creates or updates an RFQ with its items
	Save(ctx context.Context, r *RFQ) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, r *RFQ) error

	// Delete removes an RFQ and its items
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts RFQs with optional filters
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts RFQs in the given status
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// ExistsByNumber checks if an RFQ number is already taken
	ExistsByNumber(ctx context.Context, rfqNumber string) (bool, error)

	// GenerateRFQNumber generates the next unique RFQ number from the
	// yearly sequence
	GenerateRFQNumber(ctx context.Context) (string, error)
}
