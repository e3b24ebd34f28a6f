package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/somvi/backend/internal/domain/rfq"
)

// WhatsAppLinkBuilder builds wa.me deep links carrying the submission
// confirmation message.
type WhatsAppLinkBuilder struct {
	companyName string
}

// NewWhatsAppLinkBuilder creates a link builder with the company name
// used in the message signature.
func NewWhatsAppLinkBuilder(companyName string) *WhatsAppLinkBuilder {
	if companyName == "" {
		companyName = "SOMVI Somalia Build Supply"
	}
	return &WhatsAppLinkBuilder{companyName: companyName}
}

// ConfirmationLink builds the wa.me URL that opens a chat with the
// client, pre-filled with the RFQ confirmation message.
func (b *WhatsAppLinkBuilder) ConfirmationLink(whatsapp string, event *rfq.RFQSubmittedEvent) string {
	message := b.ConfirmationMessage(event)
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		strings.TrimPrefix(whatsapp, "+"),
		url.QueryEscape(message),
	)
}

// ConfirmationMessage renders the confirmation text sent after a
// submission, listing the requested materials.
func (b *WhatsAppLinkBuilder) ConfirmationMessage(event *rfq.RFQSubmittedEvent) string {
	var sb strings.Builder
	sb.WriteString("*Your request has been received!*\n\n")
	fmt.Fprintf(&sb, "*RFQ Number:* %s\n", event.RFQNumber)
	fmt.Fprintf(&sb, "*Project:* %s\n", event.ProjectName)
	fmt.Fprintf(&sb, "*Client:* %s\n", event.ClientName)

	if len(event.Items) > 0 {
		sb.WriteString("\n*Materials Requested:*\n")
		for _, item := range event.Items {
			fmt.Fprintf(&sb, "- %s - %s %s\n", item.MaterialName, item.Quantity.String(), item.Unit)
		}
	}

	sb.WriteString("\n_Our team will contact you via WhatsApp with your quotation._\n\n")
	fmt.Fprintf(&sb, "Thank you for choosing %s!", b.companyName)
	return sb.String()
}
