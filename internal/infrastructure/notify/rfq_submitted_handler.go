package notify

import (
	"context"
	"fmt"

	"github.com/somvi/backend/internal/domain/partner"
	"github.com/somvi/backend/internal/domain/rfq"
	"github.com/somvi/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RFQSubmittedHandler reacts to RFQ submissions by building the
// WhatsApp confirmation deep link for the client. The link is logged
// for the operations flow; actual message delivery happens out of band
// through the WhatsApp client.
type RFQSubmittedHandler struct {
	clientRepo partner.ClientRepository
	links      *WhatsAppLinkBuilder
	logger     *zap.Logger
}

// NewRFQSubmittedHandler creates a new handler for RFQ submitted events
func NewRFQSubmittedHandler(clientRepo partner.ClientRepository, links *WhatsAppLinkBuilder, logger *zap.Logger) *RFQSubmittedHandler {
	return &RFQSubmittedHandler{
		clientRepo: clientRepo,
		links:      links,
		logger:     logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *RFQSubmittedHandler) EventTypes() []string {
	return []string{rfq.EventTypeRFQSubmitted}
}

// Handle builds and logs the confirmation link for a submitted RFQ
func (h *RFQSubmittedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	submitted, ok := event.(*rfq.RFQSubmittedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", rfq.EventTypeRFQSubmitted),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			rfq.EventTypeRFQSubmitted, event.EventType())
	}

	client, err := h.clientRepo.FindByID(ctx, submitted.ClientID)
	if err != nil {
		h.logger.Error("client lookup failed for submitted rfq",
			zap.String("rfq_number", submitted.RFQNumber),
			zap.String("client_id", submitted.ClientID.String()),
			zap.Error(err),
		)
		return err
	}

	link := h.links.ConfirmationLink(client.WhatsApp, submitted)

	h.logger.Info("whatsapp confirmation ready",
		zap.String("rfq_number", submitted.RFQNumber),
		zap.String("client_name", submitted.ClientName),
		zap.String("whatsapp", client.WhatsApp),
		zap.String("link", link),
	)
	return nil
}
