package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/catalog"
	"github.com/somvi/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormMaterialSupplierRepository implements catalog.MaterialSupplierRepository using GORM
type GormMaterialSupplierRepository struct {
	db *gorm.DB
}

// NewGormMaterialSupplierRepository creates a new GormMaterialSupplierRepository
func NewGormMaterialSupplierRepository(db *gorm.DB) *GormMaterialSupplierRepository {
	return &GormMaterialSupplierRepository{db: db}
}

// FindByMaterial finds all supplier offers for a material
func (r *GormMaterialSupplierRepository) FindByMaterial(ctx context.Context, materialID uuid.UUID) ([]catalog.MaterialSupplier, error) {
	var offers []catalog.MaterialSupplier
	if err := r.db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Order("supplier_price ASC").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// FindBySupplier finds all material offers from a supplier
func (r *GormMaterialSupplierRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]catalog.MaterialSupplier, error) {
	var offers []catalog.MaterialSupplier
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// Save creates or updates an offer
func (r *GormMaterialSupplierRepository) Save(ctx context.Context, offer *catalog.MaterialSupplier) error {
	return r.db.WithContext(ctx).Save(offer).Error
}

// Delete removes an offer
func (r *GormMaterialSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.MaterialSupplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormMaterialSupplierRepository implements MaterialSupplierRepository
var _ catalog.MaterialSupplierRepository = (*GormMaterialSupplierRepository)(nil)
