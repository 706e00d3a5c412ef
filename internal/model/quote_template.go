package model

import (
	"time"

	"github.com/google/uuid"
)

// QuoteTemplate is a reusable set of quote lines a contractor starts new
// quotes from (e.g. "standard bathroom renovation").
type QuoteTemplate struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description *string
	Items       LineItems `gorm:"type:jsonb;not null;default:'[]'"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
