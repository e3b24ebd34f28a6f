package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/shared"
)

// MaterialRepository defines the interface for material persistence
type MaterialRepository interface {
	// FindByID finds a material by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Material, error)

	// FindAll finds all materials with filtering; Filter.Search matches
	// against the English and Somali names
	FindAll(ctx context.Context, filter shared.Filter) ([]Material, error)

	// FindByCategory finds materials in a category
	FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]Material, error)

	// FindActive finds all active materials
	FindActive(ctx context.Context, filter shared.Filter) ([]Material, error)

	// ListCategories returns the distinct categories in the catalog
	ListCategories(ctx context.Context) ([]string, error)

	// Save creates or updates a material
	Save(ctx context.Context, material *Material) error

	// Delete removes a material
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts materials with optional filters
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// MaterialSupplierRepository defines the interface for standing
// supplier offers on materials
type MaterialSupplierRepository interface {
	// FindByMaterial finds all supplier offers for a material
	FindByMaterial(ctx context.Context, materialID uuid.UUID) ([]MaterialSupplier, error)

	// FindBySupplier finds all material offers from a supplier
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]MaterialSupplier, error)

	// Save creates or updates an offer
	Save(ctx context.Context, offer *MaterialSupplier) error

	// Delete removes an offer
	Delete(ctx context.Context, id uuid.UUID) error
}
