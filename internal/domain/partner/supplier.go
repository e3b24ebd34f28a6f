package partner

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/somvi/backend/internal/domain/shared"
)

// Supplier represents a construction-materials supplier. Suppliers are
// shared reference data quoted in the per-item pricing columns; the
// commission percentage feeds the finance estimates.
type Supplier struct {
	shared.BaseAggregateRoot
	Name              string          `gorm:"type:varchar(200);not null"`
	Company           string          `gorm:"type:varchar(200)"`
	Contact           string          `gorm:"type:varchar(50)"`
	Email             string          `gorm:"type:varchar(200)"`
	CommissionPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Active            bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new active supplier
func NewSupplier(name, company, contact string, commissionPercent decimal.Decimal) (*Supplier, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}
	if err := validateCommissionPercent(commissionPercent); err != nil {
		return nil, err
	}
	if company != "" && len(company) > 200 {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company name cannot exceed 200 characters")
	}

	supplier := &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Company:           company,
		Contact:           contact,
		CommissionPercent: commissionPercent,
		Active:            true,
	}

	supplier.AddDomainEvent(NewSupplierCreatedEvent(supplier))

	return supplier, nil
}

// Update updates the supplier's basic information
func (s *Supplier) Update(name, company, contact string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}
	if company != "" && len(company) > 200 {
		return shared.NewDomainError("INVALID_COMPANY", "Company name cannot exceed 200 characters")
	}

	s.Name = name
	s.Company = company
	s.Contact = contact
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSupplierUpdatedEvent(s))

	return nil
}

// SetEmail sets the supplier's email address
func (s *Supplier) SetEmail(email string) error {
	if email != "" {
		if err := validateClientEmail(email); err != nil {
			return err
		}
	}

	s.Email = email
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetCommissionPercent sets the commission percentage
func (s *Supplier) SetCommissionPercent(percent decimal.Decimal) error {
	if err := validateCommissionPercent(percent); err != nil {
		return err
	}

	s.CommissionPercent = percent
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Activate marks the supplier as active
func (s *Supplier) Activate() error {
	if s.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Supplier is already active")
	}

	s.Active = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Deactivate marks the supplier as inactive.
// Inactive suppliers stay referenced by historical quotes.
func (s *Supplier) Deactivate() error {
	if !s.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Supplier is already inactive")
	}

	s.Active = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// IsActive returns true if the supplier is active
func (s *Supplier) IsActive() bool {
	return s.Active
}

// CommissionOn returns the commission amount for the given profit
func (s *Supplier) CommissionOn(profit decimal.Decimal) decimal.Decimal {
	return profit.Mul(s.CommissionPercent).Div(decimal.NewFromInt(100))
}

// Validation functions

func validateSupplierName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	return nil
}

func validateCommissionPercent(percent decimal.Decimal) error {
	if percent.IsNegative() {
		return shared.NewDomainError("INVALID_COMMISSION", "Commission percent cannot be negative")
	}
	if percent.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_COMMISSION", "Commission percent cannot exceed 100")
	}
	return nil
}
