package rfq

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/somvi/backend/internal/domain/crm"
	"github.com/somvi/backend/internal/domain/partner"
	"github.com/somvi/backend/internal/domain/rfq"
	"github.com/somvi/backend/internal/domain/shared"
	"github.com/somvi/backend/internal/domain/shared/valueobject"
	"go.uber.org/zap"
)

// SubmissionStore persists a storefront submission as one unit: the
// client (when first seen), the RFQ with its items, and the lead. A
// partial failure rolls back all three.
type SubmissionStore interface {
	SaveSubmission(ctx context.Context, client *partner.Client, clientIsNew bool, quote *rfq.RFQ, lead *crm.Lead) error
}

// RFQService handles RFQ business operations
type RFQService struct {
	rfqRepo        rfq.Repository
	clientRepo     partner.ClientRepository
	submissions    SubmissionStore
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewRFQService creates a new RFQService
func NewRFQService(rfqRepo rfq.Repository, clientRepo partner.ClientRepository, submissions SubmissionStore, logger *zap.Logger) *RFQService {
	return &RFQService{
		rfqRepo:     rfqRepo,
		clientRepo:  clientRepo,
		submissions: submissions,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *RFQService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Submit handles a storefront RFQ submission. The client is looked up by
// WhatsApp number and created on first contact; the RFQ and the sales
// lead are written in the same transaction as the client.
func (s *RFQService) Submit(ctx context.Context, req SubmitRFQRequest) (*RFQResponse, error) {
	if len(req.Items) == 0 && req.Description == "" {
		return nil, shared.NewDomainError("EMPTY_REQUEST", "Submission needs at least one item or a description")
	}

	whatsapp, err := partner.NormalizeWhatsApp(req.WhatsApp)
	if err != nil {
		return nil, err
	}

	// Find-or-create by WhatsApp identity. A returning client gets the
	// submitted name and company as the fresher snapshot.
	client, err := s.clientRepo.FindByWhatsApp(ctx, whatsapp)
	clientIsNew := false
	switch {
	case err == nil:
		if err := client.Update(req.ClientName, req.Company); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		client, err = partner.NewClient(req.ClientName, req.Company, whatsapp)
		if err != nil {
			return nil, err
		}
		clientIsNew = true
	default:
		return nil, err
	}

	rfqNumber, err := s.rfqRepo.GenerateRFQNumber(ctx)
	if err != nil {
		// Degraded mode: a timestamp id keeps submissions flowing when
		// the sequence query fails.
		rfqNumber = rfq.FallbackNumber(time.Now())
		s.logger.Warn("rfq number sequence unavailable, using timestamp id",
			zap.String("rfq_number", rfqNumber),
			zap.Error(err),
		)
	}

	quote, err := rfq.NewRFQ(rfqNumber, client.ID, client.Name, req.ProjectName)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		quote.SetDescription(req.Description)
	}

	for _, item := range req.Items {
		if _, err := quote.AddItem(item.MaterialID, item.MaterialName, item.SomaliName, item.Unit, item.Quantity); err != nil {
			return nil, err
		}
	}

	lead, err := crm.NewLead(client.Name, whatsapp, req.ProjectName, &quote.ID)
	if err != nil {
		return nil, err
	}
	if req.Location != "" {
		lead.SetLocation(req.Location)
	}
	if req.Description != "" {
		lead.SetNotes(req.Description)
	}

	quote.FinalizeSubmission()

	if err := s.submissions.SaveSubmission(ctx, client, clientIsNew, quote, lead); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, quote)

	response := ToRFQResponse(quote)
	return &response, nil
}

// GetByID retrieves an RFQ by ID
func (s *RFQService) GetByID(ctx context.Context, rfqID uuid.UUID) (*RFQResponse, error) {
	quote, err := s.rfqRepo.FindByID(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	response := ToRFQResponse(quote)
	return &response, nil
}

// GetAggregate retrieves the full RFQ aggregate. Used by document
// export, which needs the pricing columns rather than the API shape.
func (s *RFQService) GetAggregate(ctx context.Context, rfqID uuid.UUID) (*rfq.RFQ, error) {
	return s.rfqRepo.FindByID(ctx, rfqID)
}

// GetByNumber retrieves an RFQ by its RFQ number
func (s *RFQService) GetByNumber(ctx context.Context, rfqNumber string) (*RFQResponse, error) {
	quote, err := s.rfqRepo.FindByNumber(ctx, rfqNumber)
	if err != nil {
		return nil, err
	}
	response := ToRFQResponse(quote)
	return &response, nil
}

// List retrieves RFQs with filtering and pagination
func (s *RFQService) List(ctx context.Context, filter RFQListFilter) ([]RFQListItemResponse, int64, error) {
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

	if filter.ClientID != nil {
		domainFilter.Filters["client_id"] = *filter.ClientID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	rfqs, err := s.rfqRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.rfqRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToRFQListItemResponses(rfqs), total, nil
}

// SavePricing writes the admin pricing table onto an RFQ: per-item
// supplier quote columns plus delivery fee and taxes. A pending RFQ
// moves to QUOTED; saving again on a quoted RFQ re-prices in place.
func (s *RFQService) SavePricing(ctx context.Context, rfqID uuid.UUID, req SavePricingRequest) (*RFQResponse, error) {
	quote, err := s.rfqRepo.FindByID(ctx, rfqID)
	if err != nil {
		return nil, err
	}

	for _, input := range req.Items {
		quotes := make([]rfq.SupplierQuote, 0, len(input.Quotes))
		for _, q := range input.Quotes {
			col, err := rfq.NewSupplierQuote(q.Slot,
				valueobject.NewMoneyUSD(q.BasePrice),
				valueobject.NewMoneyUSD(q.Markup),
			)
			if err != nil {
				return nil, err
			}
			if q.SupplierID != nil {
				col = col.WithSupplier(*q.SupplierID)
			}
			quotes = append(quotes, col)
		}
		if err := quote.UpdateItemQuotes(input.ItemID, quotes); err != nil {
			return nil, err
		}
	}

	if req.DeliveryFee != nil {
		if err := quote.SetDeliveryFee(valueobject.NewMoneyUSD(*req.DeliveryFee)); err != nil {
			return nil, err
		}
	}
	if req.Taxes != nil {
		if err := quote.SetTaxes(valueobject.NewMoneyUSD(*req.Taxes)); err != nil {
			return nil, err
		}
	}

	if err := quote.MarkQuoted(); err != nil {
		return nil, err
	}

	if err := s.rfqRepo.SaveWithLock(ctx, quote); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, quote)

	response := ToRFQResponse(quote)
	return &response, nil
}

// Complete marks a quoted RFQ as completed
func (s *RFQService) Complete(ctx context.Context, rfqID uuid.UUID) (*RFQResponse, error) {
	quote, err := s.rfqRepo.FindByID(ctx, rfqID)
	if err != nil {
		return nil, err
	}

	if err := quote.Complete(); err != nil {
		return nil, err
	}

	if err := s.rfqRepo.SaveWithLock(ctx, quote); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, quote)

	response := ToRFQResponse(quote)
	return &response, nil
}

// Delete removes an RFQ and its items
func (s *RFQService) Delete(ctx context.Context, rfqID uuid.UUID) error {
	if _, err := s.rfqRepo.FindByID(ctx, rfqID); err != nil {
		return err
	}
	return s.rfqRepo.Delete(ctx, rfqID)
}

// GetStatusSummary retrieves RFQ counts by status for the dashboard
func (s *RFQService) GetStatusSummary(ctx context.Context) (*StatusSummary, error) {
	pending, err := s.rfqRepo.CountByStatus(ctx, rfq.StatusPending)
	if err != nil {
		return nil, err
	}

	quoted, err := s.rfqRepo.CountByStatus(ctx, rfq.StatusQuoted)
	if err != nil {
		return nil, err
	}

	completed, err := s.rfqRepo.CountByStatus(ctx, rfq.StatusCompleted)
	if err != nil {
		return nil, err
	}

	return &StatusSummary{
		Pending:   pending,
		Quoted:    quoted,
		Completed: completed,
		Total:     pending + quoted + completed,
	}, nil
}

// publishEvents publishes buffered domain events after a successful save
func (s *RFQService) publishEvents(ctx context.Context, quote *rfq.RFQ) {
	if s.eventPublisher == nil {
		quote.ClearDomainEvents()
		return
	}
	for _, event := range quote.GetDomainEvents() {
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish domain event",
				zap.String("event_type", event.EventType()),
				zap.String("rfq_id", quote.ID.String()),
				zap.Error(err),
			)
		}
	}
	quote.ClearDomainEvents()
}
