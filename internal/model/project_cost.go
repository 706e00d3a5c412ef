package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectCost is a standalone project expense tracked outside a quote's
// JSONB extras — recurring overheads the contractor attaches to quotes
// (permits, crane rental, disposal).
type ProjectCost struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	QuoteID *uuid.UUID `gorm:"type:uuid;index"`

	Name           string          `gorm:"not null"`
	Cost           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ContractorCost decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes          *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
