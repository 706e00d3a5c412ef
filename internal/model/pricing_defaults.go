package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingDefaults holds a user's per-category fallback values. An item-level
// value always wins over these; these win over the hardcoded constants in
// the pricing package.
type PricingDefaults struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_category;not null"`
	CategoryKey string    `gorm:"uniqueIndex:idx_user_category;not null"`

	ProfitPercent   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	LaborCostPerDay decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	HoursPerDay     decimal.Decimal `gorm:"type:decimal(4,1);not null;default:8"`

	// Tiling-only defaults; zero for other categories.
	WastagePercent    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	DailyOutput       decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	PanelWorkCapacity decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	AdditionalCost    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	FixedProjectCost  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the plural the SQL migrations use.
func (PricingDefaults) TableName() string { return "pricing_defaults" }
