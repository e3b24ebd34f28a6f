package crm

import (
	"context"

	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/crm"
	"github.com/somvi/backend/internal/domain/shared"
)

// LeadService handles pipeline operations on leads. Leads are created
// by the RFQ submission flow, not through this service.
type LeadService struct {
	leadRepo crm.LeadRepository
}

// NewLeadService creates a new LeadService
func NewLeadService(leadRepo crm.LeadRepository) *LeadService {
	return &LeadService{
		leadRepo: leadRepo,
	}
}

// GetByID retrieves a lead by ID
func (s *LeadService) GetByID(ctx context.Context, leadID uuid.UUID) (*LeadResponse, error) {
	lead, err := s.leadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	response := ToLeadResponse(lead)
	return &response, nil
}

// GetByRFQ retrieves the lead linked to an RFQ
func (s *LeadService) GetByRFQ(ctx context.Context, rfqID uuid.UUID) (*LeadResponse, error) {
	lead, err := s.leadRepo.FindByRFQ(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	response := ToLeadResponse(lead)
	return &response, nil
}

// List retrieves leads with filtering and pagination
func (s *LeadService) List(ctx context.Context, filter LeadListFilter) ([]LeadResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Stage != nil {
		domainFilter.Filters["stage"] = string(*filter.Stage)
	}

	leads, err := s.leadRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.leadRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToLeadResponses(leads), total, nil
}

// Update applies pipeline changes to a lead
func (s *LeadService) Update(ctx context.Context, leadID uuid.UUID, req UpdateLeadRequest) (*LeadResponse, error) {
	lead, err := s.leadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if req.Stage != nil {
		if err := lead.SetStage(*req.Stage); err != nil {
			return nil, err
		}
	}
	if req.Location != nil {
		lead.SetLocation(*req.Location)
	}
	if req.Notes != nil {
		lead.SetNotes(*req.Notes)
	}

	if err := s.leadRepo.Save(ctx, lead); err != nil {
		return nil, err
	}

	response := ToLeadResponse(lead)
	return &response, nil
}

// Delete removes a lead
func (s *LeadService) Delete(ctx context.Context, leadID uuid.UUID) error {
	if _, err := s.leadRepo.FindByID(ctx, leadID); err != nil {
		return err
	}
	return s.leadRepo.Delete(ctx, leadID)
}
