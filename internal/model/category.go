package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is a work category (tiling, paint, plumbing, electrical,
// demolition, construction). Key is the stable identifier the pricing
// configs and quote lines reference; Name is the display label.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key         string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"not null"`
	Description *string
	SortOrder   int  `gorm:"not null;default:0"`
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's pluralization ("categories", not "categorys").
func (Category) TableName() string { return "categories" }
