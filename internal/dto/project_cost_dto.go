package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProjectCostRequest struct {
	QuoteID        *string         `json:"quote_id" validate:"omitempty,uuid"`
	Name           string          `json:"name"     validate:"required,min=1,max=200"`
	Cost           decimal.Decimal `json:"cost"             validate:"gte=0"`
	ContractorCost decimal.Decimal `json:"contractor_cost"  validate:"gte=0"`
	Notes          *string         `json:"notes"`
}

type UpdateProjectCostRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Cost           *decimal.Decimal `json:"cost"`
	ContractorCost *decimal.Decimal `json:"contractor_cost"`
	Notes          *string          `json:"notes"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProjectCostFilter struct {
	QuoteID string `form:"quote_id"`
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProjectCostResponse struct {
	ID             string          `json:"id"`
	QuoteID        *string         `json:"quote_id"`
	Name           string          `json:"name"`
	Cost           decimal.Decimal `json:"cost"`
	ContractorCost decimal.Decimal `json:"contractor_cost"`
	Notes          *string         `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ProjectCostListResponse struct {
	Data  []ProjectCostResponse `json:"data"`
	Total int64                 `json:"total"`
}
