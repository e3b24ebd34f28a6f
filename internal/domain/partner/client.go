package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/somvi/backend/internal/domain/shared"
)

// somaliPhone matches Somali mobile numbers with an optional country
// prefix, after whitespace and separators have been stripped.
var somaliPhone = regexp.MustCompile(`^(\+252|252)?[0-9]{9,10}$`)

// Client represents a brokerage client. Clients are identified by
// their WhatsApp number: the first RFQ submission creates the record
// and later submissions with the same number reuse it.
type Client struct {
	shared.BaseAggregateRoot
	Name     string `gorm:"type:varchar(200);not null"`
	Company  string `gorm:"type:varchar(200)"`
	WhatsApp string `gorm:"column:whatsapp;type:varchar(20);not null;uniqueIndex"`
	Email    string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client. The WhatsApp number is normalized
// to its canonical 252-prefixed form before it becomes the identity.
func NewClient(name, company, whatsapp string) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}
	normalized, err := NormalizeWhatsApp(whatsapp)
	if err != nil {
		return nil, err
	}
	if company != "" && len(company) > 200 {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company name cannot exceed 200 characters")
	}

	client := &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Company:           company,
		WhatsApp:          normalized,
	}

	client.AddDomainEvent(NewClientCreatedEvent(client))

	return client, nil
}

// Update updates the client's name and company.
// The WhatsApp identity never changes through this path.
func (c *Client) Update(name, company string) error {
	if err := validateClientName(name); err != nil {
		return err
	}
	if company != "" && len(company) > 200 {
		return shared.NewDomainError("INVALID_COMPANY", "Company name cannot exceed 200 characters")
	}

	c.Name = name
	c.Company = company
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientUpdatedEvent(c))

	return nil
}

// SetEmail sets the client's email address
func (c *Client) SetEmail(email string) error {
	if email != "" {
		if err := validateClientEmail(email); err != nil {
			return err
		}
	}

	c.Email = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// WhatsAppLink returns the wa.me deep link for the client's number
func (c *Client) WhatsAppLink() string {
	return "https://wa.me/" + c.WhatsApp
}

// NormalizeWhatsApp validates a Somali WhatsApp number and returns its
// canonical form: digits only, prefixed with 252.
func NormalizeWhatsApp(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if cleaned == "" {
		return "", shared.NewDomainError("INVALID_PHONE", "WhatsApp number cannot be empty")
	}
	if !somaliPhone.MatchString(cleaned) {
		return "", shared.NewDomainError("INVALID_PHONE", "WhatsApp number is not a valid Somali number")
	}

	digits := strings.TrimPrefix(cleaned, "+")
	// A bare 9 or 10 digit subscriber number gets the country prefix;
	// a number already carrying 252 plus the subscriber digits is kept.
	if !strings.HasPrefix(digits, "252") || len(digits) < 12 {
		digits = "252" + digits
	}
	return digits, nil
}

// Validation functions

func validateClientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 200 characters")
	}
	return nil
}

func validateClientEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
