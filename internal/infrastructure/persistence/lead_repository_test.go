package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/crm"
	"github.com/somvi/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockLeadRepository creates a GormLeadRepository with a mocked SQL connection
func newMockLeadRepository(t *testing.T) (*GormLeadRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormLeadRepository(gormDB), mock, mockDB
}

func leadRows(id uuid.UUID, clientName string, stage string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "client_name", "whatsapp", "project_name", "location", "notes", "stage", "version",
	}).AddRow(id, clientName, "252615551234", "Warehouse Extension", "Mogadishu", "", stage, 1)
}

func TestGormLeadRepository_FindByRFQ(t *testing.T) {
	t.Run("finds lead linked to a quote", func(t *testing.T) {
		repo, mock, mockDB := newMockLeadRepository(t)
		defer mockDB.Close()

		rfqID := uuid.New()
		leadID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "leads" WHERE rfq_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(rfqID, 1).
			WillReturnRows(leadRows(leadID, "Axmed Cali", "quoted"))

		lead, err := repo.FindByRFQ(context.Background(), rfqID)

		assert.NoError(t, err)
		assert.NotNil(t, lead)
		assert.Equal(t, leadID, lead.ID)
		assert.Equal(t, crm.LeadStageQuoted, lead.Stage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when no lead is linked", func(t *testing.T) {
		repo, mock, mockDB := newMockLeadRepository(t)
		defer mockDB.Close()

		rfqID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "leads" WHERE rfq_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(rfqID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		lead, err := repo.FindByRFQ(context.Background(), rfqID)

		assert.Error(t, err)
		assert.Nil(t, lead)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormLeadRepository_FindByStage(t *testing.T) {
	t.Run("filters by pipeline stage", func(t *testing.T) {
		repo, mock, mockDB := newMockLeadRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "leads" WHERE stage = \$1 ORDER BY created_at DESC LIMIT .*`).
			WithArgs(crm.LeadStageNew, 20).
			WillReturnRows(leadRows(uuid.New(), "Xaliimo Nuur", "new"))

		leads, err := repo.FindByStage(context.Background(), crm.LeadStageNew, shared.Filter{
			Page:     1,
			PageSize: 20,
		})

		assert.NoError(t, err)
		assert.Len(t, leads, 1)
		assert.Equal(t, crm.LeadStageNew, leads[0].Stage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormLeadRepository_Count(t *testing.T) {
	t.Run("counts leads in a stage", func(t *testing.T) {
		repo, mock, mockDB := newMockLeadRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "leads" WHERE stage = \$1`).
			WithArgs("won").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.Count(context.Background(), shared.Filter{
			Filters: map[string]interface{}{"stage": "won"},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormLeadRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound for missing lead", func(t *testing.T) {
		repo, mock, mockDB := newMockLeadRepository(t)
		defer mockDB.Close()

		leadID := uuid.New()

		mock.ExpectExec(`DELETE FROM "leads" WHERE id = \$1`).
			WithArgs(leadID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), leadID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
