package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/rfq"
	"github.com/somvi/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRFQRepository implements rfq.Repository using GORM
type GormRFQRepository struct {
	db *gorm.DB
}

// NewGormRFQRepository creates a new GormRFQRepository
func NewGormRFQRepository(db *gorm.DB) *GormRFQRepository {
	return &GormRFQRepository{db: db}
}

// FindByID finds an RFQ by its ID, items included
func (r *GormRFQRepository) FindByID(ctx context.Context, id uuid.UUID) (*rfq.RFQ, error) {
	var quote rfq.RFQ
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// FindByNumber finds an RFQ by its RFQ number
func (r *GormRFQRepository) FindByNumber(ctx context.Context, rfqNumber string) (*rfq.RFQ, error) {
	var quote rfq.RFQ
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("rfq_number = ?", rfqNumber).
		First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// FindAll finds all RFQs with filtering
func (r *GormRFQRepository) FindAll(ctx context.Context, filter shared.Filter) ([]rfq.RFQ, error) {
	var quotes []rfq.RFQ
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&rfq.RFQ{}).Preload("Items"),
		filter,
	)

	if err := query.Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// FindByClient finds RFQs belonging to a client
func (r *GormRFQRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]rfq.RFQ, error) {
	var quotes []rfq.RFQ
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&rfq.RFQ{}).Preload("Items").
			Where("client_id = ?", clientID),
		filter,
	)

	if err := query.Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// FindByStatus finds RFQs by status
func (r *GormRFQRepository) FindByStatus(ctx context.Context, status rfq.Status, filter shared.Filter) ([]rfq.RFQ, error) {
	var quotes []rfq.RFQ
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&rfq.RFQ{}).Preload("Items").
			Where("status = ?", status),
		filter,
	)

	if err := query.Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// FindCompletedBetween finds completed RFQs whose completion time falls
// inside the given range, oldest first
func (r *GormRFQRepository) FindCompletedBetween(ctx context.Context, from, to time.Time) ([]rfq.RFQ, error) {
	var quotes []rfq.RFQ
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ? AND completed_at >= ? AND completed_at <= ?", rfq.StatusCompleted, from, to).
		Order("completed_at ASC").
		Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// Save creates or updates an RFQ with its items
func (r *GormRFQRepository) Save(ctx context.Context, quote *rfq.RFQ) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveRFQTx(tx, quote)
	})
}

// saveRFQTx writes an RFQ and reconciles its items inside an existing
// transaction. Used by both Save and the submission store.
func saveRFQTx(tx *gorm.DB, quote *rfq.RFQ) error {
	if err := tx.Omit("Items").Save(quote).Error; err != nil {
		return err
	}

	// Handle items: delete removed items and save/update existing ones
	currentItemIDs := make([]uuid.UUID, len(quote.Items))
	for i, item := range quote.Items {
		currentItemIDs[i] = item.ID
	}

	if len(currentItemIDs) > 0 {
		if err := tx.Where("rfq_id = ? AND id NOT IN ?", quote.ID, currentItemIDs).
			Delete(&rfq.Item{}).Error; err != nil {
			return err
		}
	} else {
		if err := tx.Where("rfq_id = ?", quote.ID).
			Delete(&rfq.Item{}).Error; err != nil {
			return err
		}
	}

	for i := range quote.Items {
		quote.Items[i].RFQID = quote.ID
		if err := tx.Save(&quote.Items[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormRFQRepository) SaveWithLock(ctx context.Context, quote *rfq.RFQ) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Get current version from database
		var currentVersion int
		if err := tx.Model(&rfq.RFQ{}).
			Where("id = ?", quote.ID).
			Select("version").
			Scan(&currentVersion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		// Check version matches
		if currentVersion != quote.Version {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The RFQ has been modified by another user")
		}

		// Increment version
		quote.Version++
		quote.UpdatedAt = time.Now()

		// Update RFQ with version check
		result := tx.Model(&rfq.RFQ{}).
			Where("id = ? AND version = ?", quote.ID, currentVersion).
			Updates(map[string]interface{}{
				"client_id":    quote.ClientID,
				"client_name":  quote.ClientName,
				"project_name": quote.ProjectName,
				"description":  quote.Description,
				"status":       quote.Status,
				"delivery_fee": quote.DeliveryFee,
				"taxes":        quote.Taxes,
				"subtotal":     quote.Subtotal,
				"total_profit": quote.TotalProfit,
				"grand_total":  quote.GrandTotal,
				"completed_at": quote.CompletedAt,
				"version":      quote.Version,
				"updated_at":   quote.UpdatedAt,
			})

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The RFQ has been modified by another user")
		}

		// Handle items
		currentItemIDs := make([]uuid.UUID, len(quote.Items))
		for i, item := range quote.Items {
			currentItemIDs[i] = item.ID
		}

		if len(currentItemIDs) > 0 {
			if err := tx.Where("rfq_id = ? AND id NOT IN ?", quote.ID, currentItemIDs).
				Delete(&rfq.Item{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("rfq_id = ?", quote.ID).
				Delete(&rfq.Item{}).Error; err != nil {
				return err
			}
		}

		for i := range quote.Items {
			quote.Items[i].RFQID = quote.ID
			if err := tx.Save(&quote.Items[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete deletes an RFQ and its items
func (r *GormRFQRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete items first
		if err := tx.Where("rfq_id = ?", id).Delete(&rfq.Item{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&rfq.RFQ{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts RFQs with optional filters
func (r *GormRFQRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&rfq.RFQ{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts RFQs in the given status
func (r *GormRFQRepository) CountByStatus(ctx context.Context, status rfq.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&rfq.RFQ{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByNumber checks if an RFQ number is already taken
func (r *GormRFQRepository) ExistsByNumber(ctx context.Context, rfqNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&rfq.RFQ{}).
		Where("rfq_number = ?", rfqNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GenerateRFQNumber generates a unique RFQ number from the yearly
// sequence. Format: SOMVI-RFQ-YYYY-NNNNN (e.g., SOMVI-RFQ-2026-00042)
func (r *GormRFQRepository) GenerateRFQNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("%s-%d-", rfq.NumberPrefix, year)

	// Get the highest RFQ number for this year
	var last rfq.RFQ
	err := r.db.WithContext(ctx).
		Model(&rfq.RFQ{}).
		Where("rfq_number LIKE ?", prefix+"%").
		Order("rfq_number DESC").
		First(&last).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && last.RFQNumber != "" {
		var num int64
		_, parseErr := fmt.Sscanf(strings.TrimPrefix(last.RFQNumber, prefix), "%d", &num)
		if parseErr == nil {
			nextNum = num + 1
		}
	}

	rfqNumber := rfq.SequenceNumber(year, nextNum)

	// Verify uniqueness
	exists, err := r.ExistsByNumber(ctx, rfqNumber)
	if err != nil {
		return "", err
	}
	if exists {
		// If exists, try incrementing until we find a unique one
		for i := 0; i < 100; i++ {
			nextNum++
			rfqNumber = rfq.SequenceNumber(year, nextNum)
			exists, err = r.ExistsByNumber(ctx, rfqNumber)
			if err != nil {
				return "", err
			}
			if !exists {
				break
			}
		}
	}

	return rfqNumber, nil
}

// applyFilter applies filter options to the query
func (r *GormRFQRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	// Apply pagination
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	// Apply ordering
	orderBy := ValidateSortField(filter.OrderBy, RFQSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir)

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormRFQRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	// Apply search
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("rfq_number ILIKE ? OR client_name ILIKE ? OR project_name ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	// Apply additional filters
	for key, value := range filter.Filters {
		switch key {
		case "client_id":
			query = query.Where("client_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "statuses":
			if statuses, ok := value.([]string); ok && len(statuses) > 0 {
				query = query.Where("status IN ?", statuses)
			}
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("created_at <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormRFQRepository implements rfq.Repository
var _ rfq.Repository = (*GormRFQRepository)(nil)
