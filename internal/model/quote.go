package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"quotecraft/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote statuses.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusApproved = "approved"
	QuoteStatusRejected = "rejected"
	QuoteStatusExpired  = "expired"
)

// LineItems is the JSONB column holding a quote's line items. The element
// type is the pricing package's normalized row, stored verbatim.
type LineItems []pricing.LineItem

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		l = LineItems{}
	}
	return json.Marshal(l)
}

func (l *LineItems) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// AdditionalCosts is the JSONB column for project-level extras.
type AdditionalCosts []QuoteAdditionalCost

// QuoteAdditionalCost is one project-level extra with its own optional
// contractor cost (zero means pass-through).
type QuoteAdditionalCost struct {
	Name           string  `json:"name"`
	Cost           float64 `json:"cost"`
	ContractorCost float64 `json:"contractorCost,omitempty"`
}

func (a AdditionalCosts) Value() (driver.Value, error) {
	if a == nil {
		a = AdditionalCosts{}
	}
	return json.Marshal(a)
}

func (a *AdditionalCosts) Scan(src interface{}) error {
	return scanJSON(src, a)
}

// PaymentTerms is the JSONB column for the quote's payment schedule.
type PaymentTerms []PaymentTerm

// PaymentTerm is one milestone of the payment schedule.
type PaymentTerm struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
	DueOn   string  `json:"dueOn,omitempty"` // e.g. "signing", "delivery", ISO date
}

func (p PaymentTerms) Value() (driver.Value, error) {
	if p == nil {
		p = PaymentTerms{}
	}
	return json.Marshal(p)
}

func (p *PaymentTerms) Scan(src interface{}) error {
	return scanJSON(src, p)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("model: unsupported JSONB source type")
	}
}

// Quote is an itemized offer built from the category editors. Line items,
// additional costs and payment terms live in JSONB; the totals columns are
// recomputed server-side from those on every write.
type Quote struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	QuoteNumber string    `gorm:"uniqueIndex;not null"`
	Status      string    `gorm:"index;not null;default:'draft'"`

	Title          *string
	ProjectName    *string
	ProjectAddress *string
	ClientName     *string
	ClientEmail    *string
	ClientPhone    *string

	Items           LineItems       `gorm:"type:jsonb;not null;default:'[]'"`
	AdditionalCosts AdditionalCosts `gorm:"type:jsonb;not null;default:'[]'"`
	PaymentTerms    PaymentTerms    `gorm:"type:jsonb;not null;default:'[]'"`

	DiscountPercent      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PriceIncreasePercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	TotalCost            decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalPrice           decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ProfitAmount         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ProfitPercent        decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0"`
	WorkDays             decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`

	Notes      *string
	ValidUntil *time.Time
	SentAt     *time.Time
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
