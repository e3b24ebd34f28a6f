package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/somvi/backend/internal/domain/shared"
)

// Material represents a catalog entry for a construction material.
// Materials are shared reference data: RFQ line items reference them
// but never own them.
type Material struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(200);not null"`
	SomaliName  string `gorm:"type:varchar(200);not null"`
	Category    string `gorm:"type:varchar(100);not null;index"`
	Subcategory string `gorm:"type:varchar(100)"`
	Unit        string `gorm:"type:varchar(20);not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"type:varchar(500)"`
	Active      bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Material) TableName() string {
	return "materials"
}

// NewMaterial creates a new active material
func NewMaterial(name, somaliName, category, unit string) (*Material, error) {
	if err := validateMaterialName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(somaliName) == "" {
		return nil, shared.NewDomainError("INVALID_SOMALI_NAME", "Somali name cannot be empty")
	}
	if strings.TrimSpace(category) == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if err := validateMaterialUnit(unit); err != nil {
		return nil, err
	}

	material := &Material{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		SomaliName:        somaliName,
		Category:          category,
		Unit:              unit,
		Active:            true,
	}

	material.AddDomainEvent(NewMaterialCreatedEvent(material))

	return material, nil
}

// Update updates the material's display information
func (m *Material) Update(name, somaliName, description string) error {
	if err := validateMaterialName(name); err != nil {
		return err
	}
	if strings.TrimSpace(somaliName) == "" {
		return shared.NewDomainError("INVALID_SOMALI_NAME", "Somali name cannot be empty")
	}

	m.Name = name
	m.SomaliName = somaliName
	m.Description = description
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMaterialUpdatedEvent(m))

	return nil
}

// SetCategory sets the category and optional subcategory
func (m *Material) SetCategory(category, subcategory string) error {
	if strings.TrimSpace(category) == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}

	m.Category = category
	m.Subcategory = subcategory
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMaterialUpdatedEvent(m))

	return nil
}

// SetUnit sets the unit of measure
func (m *Material) SetUnit(unit string) error {
	if err := validateMaterialUnit(unit); err != nil {
		return err
	}

	m.Unit = unit
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetImageURL sets the catalog image URL
func (m *Material) SetImageURL(url string) error {
	if url != "" && len(url) > 500 {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}

	m.ImageURL = url
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// Activate marks the material as active in the catalog
func (m *Material) Activate() error {
	if m.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Material is already active")
	}

	m.Active = true
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// Deactivate hides the material from the catalog.
// Existing RFQ items keep their material reference.
func (m *Material) Deactivate() error {
	if !m.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Material is already inactive")
	}

	m.Active = false
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// IsActive returns true if the material is listed in the catalog
func (m *Material) IsActive() bool {
	return m.Active
}

// MaterialSupplier links a material to a supplier's standing offer:
// the supplier's list price and lead time for that material.
type MaterialSupplier struct {
	shared.BaseEntity
	MaterialID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_material_supplier,unique"`
	SupplierID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_material_supplier,unique"`
	SupplierPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LeadTimeDays  int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (MaterialSupplier) TableName() string {
	return "material_suppliers"
}

// NewMaterialSupplier links a supplier's offer to a material
func NewMaterialSupplier(materialID, supplierID uuid.UUID, price decimal.Decimal, leadTimeDays int) (*MaterialSupplier, error) {
	if materialID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MATERIAL", "Material ID cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("NEGATIVE_AMOUNT", "Supplier price cannot be negative")
	}
	if leadTimeDays < 0 {
		return nil, shared.NewDomainError("INVALID_LEAD_TIME", "Lead time cannot be negative")
	}

	return &MaterialSupplier{
		BaseEntity:    shared.NewBaseEntity(),
		MaterialID:    materialID,
		SupplierID:    supplierID,
		SupplierPrice: price,
		LeadTimeDays:  leadTimeDays,
	}, nil
}

// UpdateOffer updates the supplier's price and lead time
func (ms *MaterialSupplier) UpdateOffer(price decimal.Decimal, leadTimeDays int) error {
	if price.IsNegative() {
		return shared.NewDomainError("NEGATIVE_AMOUNT", "Supplier price cannot be negative")
	}
	if leadTimeDays < 0 {
		return shared.NewDomainError("INVALID_LEAD_TIME", "Lead time cannot be negative")
	}

	ms.SupplierPrice = price
	ms.LeadTimeDays = leadTimeDays
	ms.UpdatedAt = time.Now()

	return nil
}

// Validation functions

func validateMaterialName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Material name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Material name cannot exceed 200 characters")
	}
	return nil
}

func validateMaterialUnit(unit string) error {
	if strings.TrimSpace(unit) == "" {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if len(unit) > 20 {
		return shared.NewDomainError("INVALID_UNIT", "Unit cannot exceed 20 characters")
	}
	return nil
}
