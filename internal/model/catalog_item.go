package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItem is one priced offering in a contractor's per-category price
// list. Which cost fields are meaningful depends on the category's cost
// model: direct-cost categories use ContractorCostPerUnit, hours-based ones
// HoursPerUnit, tiling the material/output fields. Unused fields stay zero.
type CatalogItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	CategoryKey string    `gorm:"index;not null"`
	Name        string    `gorm:"index;not null"`
	Description *string
	Unit        string `gorm:"not null;default:'unit'"`
	SubCategory string `gorm:"not null;default:'general'"`

	ContractorCostPerUnit decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ClientPricePerUnit    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MaterialCostPerUnit   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	HoursPerUnit          decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	DesiredProfitPercent  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`

	// Tiling-only knobs saved with the item.
	LaborCostPerDay decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	DailyOutput     decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	WastagePercent  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	AdditionalCost  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	IgnoreQuantity bool `gorm:"not null;default:false"`
	Active         bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
