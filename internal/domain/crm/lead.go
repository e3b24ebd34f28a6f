package crm

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/shared"
)

// LeadStage represents the pipeline stage of a lead
type LeadStage string

const (
	LeadStageNew       LeadStage = "new"
	LeadStageContacted LeadStage = "contacted"
	LeadStageQuoted    LeadStage = "quoted"
	LeadStageWon       LeadStage = "won"
	LeadStageLost      LeadStage = "lost"
)

// IsValid checks if the stage is a valid LeadStage
func (s LeadStage) IsValid() bool {
	switch s {
	case LeadStageNew, LeadStageContacted, LeadStageQuoted, LeadStageWon, LeadStageLost:
		return true
	}
	return false
}

// String returns the string representation of LeadStage
func (s LeadStage) String() string {
	return string(s)
}

// Lead is a pipeline-tracking record created alongside an RFQ
// submission. It links the client to the RFQ but plays no part in the
// pricing computation.
type Lead struct {
	shared.BaseAggregateRoot
	ClientName  string     `gorm:"type:varchar(200);not null"`
	WhatsApp    string     `gorm:"column:whatsapp;type:varchar(20);not null;index"`
	ProjectName string     `gorm:"type:varchar(200)"`
	Location    string     `gorm:"type:varchar(200)"`
	Notes       string     `gorm:"type:text"`
	RFQID       *uuid.UUID `gorm:"column:rfq_id;type:uuid;index"`
	Stage       LeadStage  `gorm:"type:varchar(20);not null;default:'new'"`
}

// TableName returns the table name for GORM
func (Lead) TableName() string {
	return "leads"
}

// NewLead creates a new lead in the "new" stage
func NewLead(clientName, whatsapp, projectName string, rfqID *uuid.UUID) (*Lead, error) {
	if strings.TrimSpace(clientName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if strings.TrimSpace(whatsapp) == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "WhatsApp number cannot be empty")
	}

	return &Lead{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientName:        clientName,
		WhatsApp:          whatsapp,
		ProjectName:       projectName,
		RFQID:             rfqID,
		Stage:             LeadStageNew,
	}, nil
}

// SetStage moves the lead to a different pipeline stage
func (l *Lead) SetStage(stage LeadStage) error {
	if !stage.IsValid() {
		return shared.NewDomainError("INVALID_STAGE", "Invalid lead stage")
	}

	l.Stage = stage
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

// SetLocation sets the project location
func (l *Lead) SetLocation(location string) {
	l.Location = location
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}

// SetNotes sets free-form notes on the lead
func (l *Lead) SetNotes(notes string) {
	l.Notes = notes
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}

// IsOpen returns true while the lead has not been won or lost
func (l *Lead) IsOpen() bool {
	return l.Stage != LeadStageWon && l.Stage != LeadStageLost
}
