package persistence

import (
	"context"

	apprfq "github.com/somvi/backend/internal/application/rfq"
	"github.com/somvi/backend/internal/domain/crm"
	"github.com/somvi/backend/internal/domain/partner"
	"github.com/somvi/backend/internal/domain/rfq"
	"gorm.io/gorm"
)

// GormSubmissionStore persists an RFQ submission atomically: the client
// record, the RFQ with its items, and the sales lead either all commit
// or none do.
type GormSubmissionStore struct {
	db *gorm.DB
}

// NewGormSubmissionStore creates a new GormSubmissionStore
func NewGormSubmissionStore(db *gorm.DB) *GormSubmissionStore {
	return &GormSubmissionStore{db: db}
}

// SaveSubmission writes the whole submission in one transaction
func (s *GormSubmissionStore) SaveSubmission(ctx context.Context, client *partner.Client, clientIsNew bool, quote *rfq.RFQ, lead *crm.Lead) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if clientIsNew {
			if err := tx.Create(client).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Save(client).Error; err != nil {
				return err
			}
		}

		if err := saveRFQTx(tx, quote); err != nil {
			return err
		}

		return tx.Create(lead).Error
	})
}

// Ensure GormSubmissionStore implements the submission port
var _ apprfq.SubmissionStore = (*GormSubmissionStore)(nil)
