package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/shared"
)

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindByID finds a client by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindByWhatsApp finds a client by normalized WhatsApp number
	FindByWhatsApp(ctx context.Context, whatsapp string) (*Client, error)

	// FindAll finds all clients with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// Delete removes a client
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts clients with optional filters
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByWhatsApp checks if a client exists for the number
	ExistsByWhatsApp(ctx context.Context, whatsapp string) (bool, error)
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindAll finds all suppliers with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)

	// FindActive finds all active suppliers
	FindActive(ctx context.Context) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// Delete removes a supplier
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts suppliers with optional filters
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
