package rfq

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/somvi/backend/internal/domain/shared"
	"github.com/somvi/backend/internal/domain/shared/valueobject"
)

// Status represents the lifecycle status of an RFQ
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusQuoted    Status = "QUOTED"
	StatusCompleted Status = "COMPLETED"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusQuoted, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// The lifecycle only moves forward: PENDING -> QUOTED -> COMPLETED.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusQuoted
	case StatusQuoted:
		return target == StatusCompleted
	case StatusCompleted:
		return false // Terminal state
	}
	return false
}

// DefaultQuoteSlots is the number of supplier quote columns a new item
// starts with. Columns beyond the default can be added per item.
const DefaultQuoteSlots = 5

// SupplierQuote is one supplier pricing column on an RFQ item.
// BasePrice and Markup default to zero; an untouched column contributes
// nothing to the totals.
type SupplierQuote struct {
	Slot       int // 1-based column position in the quote table
	SupplierID *uuid.UUID
	BasePrice  decimal.Decimal
	Markup     decimal.Decimal
}

// NewSupplierQuote creates a supplier quote column.
// Negative prices and markups are rejected at construction.
func NewSupplierQuote(slot int, basePrice, markup valueobject.Money) (SupplierQuote, error) {
	if slot < 1 {
		return SupplierQuote{}, shared.NewDomainError("INVALID_SLOT", "Quote slot must be positive")
	}
	if basePrice.IsNegative() {
		return SupplierQuote{}, shared.NewDomainError("NEGATIVE_AMOUNT", "Base price cannot be negative")
	}
	if markup.IsNegative() {
		return SupplierQuote{}, shared.NewDomainError("NEGATIVE_AMOUNT", "Markup cannot be negative")
	}
	return SupplierQuote{
		Slot:      slot,
		BasePrice: basePrice.Amount(),
		Markup:    markup.Amount(),
	}, nil
}

// ZeroQuote returns an empty quote column for the given slot
func ZeroQuote(slot int) SupplierQuote {
	return SupplierQuote{
		Slot:      slot,
		BasePrice: decimal.Zero,
		Markup:    decimal.Zero,
	}
}

// WithSupplier returns a copy of the quote bound to a supplier
func (q SupplierQuote) WithSupplier(supplierID uuid.UUID) SupplierQuote {
	q.SupplierID = &supplierID
	return q
}

// IsZero returns true if the column carries no pricing
func (q SupplierQuote) IsZero() bool {
	return q.BasePrice.IsZero() && q.Markup.IsZero()
}

// QuoteColumns is the per-item set of supplier quote columns, stored as
// a single jsonb column on the item row.
type QuoteColumns []SupplierQuote

// Value implements driver.Valuer for database storage
func (c QuoteColumns) Value() (driver.Value, error) {
	if c == nil {
		c = QuoteColumns{}
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for database retrieval
func (c *QuoteColumns) Scan(value interface{}) error {
	if value == nil {
		*c = QuoteColumns{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("cannot scan %T into QuoteColumns", value)
	}
}

// Item is a line item on an RFQ. It references a catalog material and
// carries the per-supplier quote columns entered during pricing.
type Item struct {
	ID           uuid.UUID
	RFQID        uuid.UUID `gorm:"column:rfq_id;type:uuid;not null;index"`
	MaterialID   *uuid.UUID
	MaterialName string
	SomaliName   string
	Quantity     decimal.Decimal
	Unit         string
	Quotes       QuoteColumns `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "rfq_items"
}

// NewItem creates a new RFQ line item with the default set of empty
// quote columns. Quantity must be positive.
func NewItem(rfqID uuid.UUID, materialID *uuid.UUID, materialName, somaliName, unit string, quantity decimal.Decimal) (*Item, error) {
	if materialName == "" {
		return nil, shared.NewDomainError("INVALID_MATERIAL_NAME", "Material name cannot be empty")
	}
	if unit == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	quotes := make([]SupplierQuote, 0, DefaultQuoteSlots)
	for slot := 1; slot <= DefaultQuoteSlots; slot++ {
		quotes = append(quotes, ZeroQuote(slot))
	}

	now := time.Now()
	return &Item{
		ID:           uuid.New(),
		RFQID:        rfqID,
		MaterialID:   materialID,
		MaterialName: materialName,
		SomaliName:   somaliName,
		Quantity:     quantity,
		Unit:         unit,
		Quotes:       quotes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// SetQuotes replaces the item's quote columns.
// Missing slots keep their zero default; each incoming quote must
// already be validated via NewSupplierQuote.
func (i *Item) SetQuotes(quotes []SupplierQuote) error {
	for _, q := range quotes {
		if q.BasePrice.IsNegative() || q.Markup.IsNegative() {
			return shared.NewDomainError("NEGATIVE_AMOUNT", "Quote prices cannot be negative")
		}
	}

	maxSlot := DefaultQuoteSlots
	for _, q := range quotes {
		if q.Slot > maxSlot {
			maxSlot = q.Slot
		}
	}

	merged := make([]SupplierQuote, 0, maxSlot)
	for slot := 1; slot <= maxSlot; slot++ {
		merged = append(merged, ZeroQuote(slot))
	}
	for _, q := range quotes {
		if q.Slot >= 1 && q.Slot <= maxSlot {
			merged[q.Slot-1] = q
		}
	}

	i.Quotes = merged
	i.UpdatedAt = time.Now()
	return nil
}

// QuoteAt returns the quote column for the given slot.
// A slot beyond the stored columns reads as a zero quote.
func (i *Item) QuoteAt(slot int) SupplierQuote {
	for _, q := range i.Quotes {
		if q.Slot == slot {
			return q
		}
	}
	return ZeroQuote(slot)
}

// RFQ is the request-for-quotation aggregate root. It owns its line
// items and carries the persisted totals recalculated on every
// pricing change.
type RFQ struct {
	shared.BaseAggregateRoot
	RFQNumber   string
	ClientID    uuid.UUID
	ClientName  string
	ProjectName string
	Description string
	Items       []Item
	Status      Status
	DeliveryFee decimal.Decimal
	Taxes       decimal.Decimal
	Subtotal    decimal.Decimal
	TotalProfit decimal.Decimal
	GrandTotal  decimal.Decimal
	CompletedAt *time.Time
}

// TableName returns the table name for GORM
func (RFQ) TableName() string {
	return "rfqs"
}

// NewRFQ creates a new RFQ in PENDING status
func NewRFQ(rfqNumber string, clientID uuid.UUID, clientName, projectName string) (*RFQ, error) {
	if rfqNumber == "" {
		return nil, shared.NewDomainError("INVALID_RFQ_NUMBER", "RFQ number cannot be empty")
	}
	if len(rfqNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_RFQ_NUMBER", "RFQ number cannot exceed 50 characters")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}
	if clientName == "" {
		return nil, shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot be empty")
	}
	if projectName == "" {
		return nil, shared.NewDomainError("INVALID_PROJECT_NAME", "Project name cannot be empty")
	}

	r := &RFQ{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		RFQNumber:         rfqNumber,
		ClientID:          clientID,
		ClientName:        clientName,
		ProjectName:       projectName,
		Items:             make([]Item, 0),
		Status:            StatusPending,
		DeliveryFee:       decimal.Zero,
		Taxes:             decimal.Zero,
		Subtotal:          decimal.Zero,
		TotalProfit:       decimal.Zero,
		GrandTotal:        decimal.Zero,
	}

	return r, nil
}

// FinalizeSubmission records the submission event with the current item
// snapshot. The submission flow calls it once all items are in place, so
// subscribers see the full request.
func (r *RFQ) FinalizeSubmission() {
	r.AddDomainEvent(NewRFQSubmittedEvent(r))
}

// SetDescription sets the free-text request description. Direct requests
// without cart items carry the whole ask here.
func (r *RFQ) SetDescription(description string) {
	r.Description = description
	r.UpdatedAt = time.Now()
}

// AddItem adds a new line item to the RFQ.
// Items can only be added while the RFQ is PENDING.
func (r *RFQ) AddItem(materialID *uuid.UUID, materialName, somaliName, unit string, quantity decimal.Decimal) (*Item, error) {
	if r.Status != StatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a priced RFQ")
	}

	item, err := NewItem(r.ID, materialID, materialName, somaliName, unit, quantity)
	if err != nil {
		return nil, err
	}

	r.Items = append(r.Items, *item)
	r.recalculateTotals()
	r.UpdatedAt = time.Now()

	return item, nil
}

// RemoveItem removes a line item.
// Only allowed while the RFQ is PENDING.
func (r *RFQ) RemoveItem(itemID uuid.UUID) error {
	if r.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove items from a priced RFQ")
	}

	for idx, item := range r.Items {
		if item.ID == itemID {
			r.Items = append(r.Items[:idx], r.Items[idx+1:]...)
			r.recalculateTotals()
			r.UpdatedAt = time.Now()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "RFQ item not found")
}

// UpdateItemQuotes replaces the quote columns of an existing item.
// Allowed in PENDING and QUOTED status; completed RFQs are frozen.
func (r *RFQ) UpdateItemQuotes(itemID uuid.UUID, quotes []SupplierQuote) error {
	if r.Status == StatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Cannot edit pricing on a completed RFQ")
	}

	for idx := range r.Items {
		if r.Items[idx].ID == itemID {
			if err := r.Items[idx].SetQuotes(quotes); err != nil {
				return err
			}
			r.recalculateTotals()
			r.UpdatedAt = time.Now()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "RFQ item not found")
}

// SetDeliveryFee sets the delivery fee added on top of the subtotal
func (r *RFQ) SetDeliveryFee(fee valueobject.Money) error {
	if r.Status == StatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Cannot edit fees on a completed RFQ")
	}
	if fee.IsNegative() {
		return shared.NewDomainError("NEGATIVE_AMOUNT", "Delivery fee cannot be negative")
	}

	r.DeliveryFee = fee.Amount()
	r.recalculateTotals()
	r.UpdatedAt = time.Now()
	return nil
}

// SetTaxes sets the tax amount added on top of the subtotal
func (r *RFQ) SetTaxes(taxes valueobject.Money) error {
	if r.Status == StatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Cannot edit taxes on a completed RFQ")
	}
	if taxes.IsNegative() {
		return shared.NewDomainError("NEGATIVE_AMOUNT", "Taxes cannot be negative")
	}

	r.Taxes = taxes.Amount()
	r.recalculateTotals()
	r.UpdatedAt = time.Now()
	return nil
}

// MarkQuoted transitions the RFQ from PENDING to QUOTED after supplier
// pricing has been entered. Saving pricing on an already QUOTED RFQ is
// a no-op transition.
func (r *RFQ) MarkQuoted() error {
	if r.Status == StatusQuoted {
		return nil
	}
	if !r.Status.CanTransitionTo(StatusQuoted) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot quote RFQ in %s status", r.Status))
	}

	r.Status = StatusQuoted
	r.UpdatedAt = time.Now()

	r.AddDomainEvent(NewRFQQuotedEvent(r))

	return nil
}

// Complete marks the RFQ as completed and stamps the completion time
func (r *RFQ) Complete() error {
	if !r.Status.CanTransitionTo(StatusCompleted) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot complete RFQ in %s status", r.Status))
	}

	now := time.Now()
	r.Status = StatusCompleted
	r.CompletedAt = &now
	r.UpdatedAt = now

	r.AddDomainEvent(NewRFQCompletedEvent(r))

	return nil
}

// recalculateTotals recalculates the persisted totals from the items
func (r *RFQ) recalculateTotals() {
	r.Subtotal = Subtotal(r.Items)
	r.TotalProfit = TotalProfit(r.Items)
	r.GrandTotal = GrandTotal(r.Subtotal, r.DeliveryFee, r.Taxes)
}

// GetSubtotalMoney returns the subtotal as Money
func (r *RFQ) GetSubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(r.Subtotal)
}

// GetTotalProfitMoney returns the total profit as Money
func (r *RFQ) GetTotalProfitMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(r.TotalProfit)
}

// GetGrandTotalMoney returns the grand total as Money
func (r *RFQ) GetGrandTotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(r.GrandTotal)
}

// ItemCount returns the number of line items
func (r *RFQ) ItemCount() int {
	return len(r.Items)
}

// IsPending returns true if the RFQ has not been priced yet
func (r *RFQ) IsPending() bool {
	return r.Status == StatusPending
}

// IsQuoted returns true if supplier pricing has been saved
func (r *RFQ) IsQuoted() bool {
	return r.Status == StatusQuoted
}

// IsCompleted returns true if the RFQ has been completed
func (r *RFQ) IsCompleted() bool {
	return r.Status == StatusCompleted
}

// GetItem returns an item by its ID
func (r *RFQ) GetItem(itemID uuid.UUID) *Item {
	for idx := range r.Items {
		if r.Items[idx].ID == itemID {
			return &r.Items[idx]
		}
	}
	return nil
}
