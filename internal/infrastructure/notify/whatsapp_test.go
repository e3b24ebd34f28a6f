package notify

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/somvi/backend/internal/domain/rfq"
	"github.com/stretchr/testify/assert"
)

func submittedEvent(t *testing.T) *rfq.RFQSubmittedEvent {
	t.Helper()

	quote, err := rfq.NewRFQ("SOMVI-RFQ-2026-00007", uuid.New(), "Axmed Cali", "Warehouse Extension")
	assert.NoError(t, err)
	_, err = quote.AddItem(nil, "Portland Cement", "Shamiito", "bag", decimal.NewFromInt(100))
	assert.NoError(t, err)
	_, err = quote.AddItem(nil, "Rebar 12mm", "Bir", "piece", decimal.NewFromInt(40))
	assert.NoError(t, err)

	return rfq.NewRFQSubmittedEvent(quote)
}

func TestWhatsAppLinkBuilder_ConfirmationMessage(t *testing.T) {
	builder := NewWhatsAppLinkBuilder("SOMVI General Trading")

	message := builder.ConfirmationMessage(submittedEvent(t))

	assert.Contains(t, message, "Your request has been received!")
	assert.Contains(t, message, "*RFQ Number:* SOMVI-RFQ-2026-00007")
	assert.Contains(t, message, "*Project:* Warehouse Extension")
	assert.Contains(t, message, "*Client:* Axmed Cali")
	assert.Contains(t, message, "- Portland Cement - 100 bag")
	assert.Contains(t, message, "- Rebar 12mm - 40 piece")
	assert.Contains(t, message, "Thank you for choosing SOMVI General Trading!")
}

func TestWhatsAppLinkBuilder_ConfirmationMessage_NoItems(t *testing.T) {
	builder := NewWhatsAppLinkBuilder("SOMVI General Trading")

	quote, err := rfq.NewRFQ("SOMVI-RFQ-2026-00008", uuid.New(), "Axmed Cali", "Warehouse Extension")
	assert.NoError(t, err)
	message := builder.ConfirmationMessage(rfq.NewRFQSubmittedEvent(quote))

	assert.NotContains(t, message, "Materials Requested")
}

func TestWhatsAppLinkBuilder_ConfirmationLink(t *testing.T) {
	builder := NewWhatsAppLinkBuilder("SOMVI General Trading")

	link := builder.ConfirmationLink("+252615123456", submittedEvent(t))

	assert.True(t, strings.HasPrefix(link, "https://wa.me/252615123456?text="), link)
	// The pre-filled message must be URL encoded
	assert.NotContains(t, link, " ")
	assert.Contains(t, link, "SOMVI-RFQ-2026-00007")
}

func TestNewWhatsAppLinkBuilder_DefaultCompanyName(t *testing.T) {
	builder := NewWhatsAppLinkBuilder("")

	message := builder.ConfirmationMessage(submittedEvent(t))
	assert.Contains(t, message, "SOMVI Somalia Build Supply")
}
