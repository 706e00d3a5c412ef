package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCatalogItemRequest struct {
	CategoryKey string  `json:"category_key" validate:"required"`
	Name        string  `json:"name"         validate:"required,min=1,max=200"`
	Description *string `json:"description"`
	Unit        string  `json:"unit"`
	SubCategory string  `json:"sub_category"`

	ContractorCostPerUnit decimal.Decimal `json:"contractor_cost_per_unit" validate:"gte=0"`
	ClientPricePerUnit    decimal.Decimal `json:"client_price_per_unit"    validate:"gte=0"`
	MaterialCostPerUnit   decimal.Decimal `json:"material_cost_per_unit"   validate:"gte=0"`
	HoursPerUnit          decimal.Decimal `json:"hours_per_unit"           validate:"gte=0"`
	DesiredProfitPercent  decimal.Decimal `json:"desired_profit_percent"   validate:"gte=0"`

	// Tiling-only fields; ignored for other categories.
	LaborCostPerDay decimal.Decimal `json:"labor_cost_per_day" validate:"gte=0"`
	DailyOutput     decimal.Decimal `json:"daily_output"       validate:"gte=0"`
	WastagePercent  decimal.Decimal `json:"wastage_percent"    validate:"gte=0"`
	AdditionalCost  decimal.Decimal `json:"additional_cost"    validate:"gte=0"`

	IgnoreQuantity bool `json:"ignore_quantity"`
}

type UpdateCatalogItemRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Unit        *string `json:"unit"`
	SubCategory *string `json:"sub_category"`

	ContractorCostPerUnit *decimal.Decimal `json:"contractor_cost_per_unit"`
	ClientPricePerUnit    *decimal.Decimal `json:"client_price_per_unit"`
	MaterialCostPerUnit   *decimal.Decimal `json:"material_cost_per_unit"`
	HoursPerUnit          *decimal.Decimal `json:"hours_per_unit"`
	DesiredProfitPercent  *decimal.Decimal `json:"desired_profit_percent"`

	LaborCostPerDay *decimal.Decimal `json:"labor_cost_per_day"`
	DailyOutput     *decimal.Decimal `json:"daily_output"`
	WastagePercent  *decimal.Decimal `json:"wastage_percent"`
	AdditionalCost  *decimal.Decimal `json:"additional_cost"`

	IgnoreQuantity *bool `json:"ignore_quantity"`
	Active         *bool `json:"active"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type CatalogItemFilter struct {
	CategoryKey string `form:"category"`
	SubCategory string `form:"sub_category"`
	Name        string `form:"name"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CatalogItemResponse struct {
	ID          string  `json:"id"`
	CategoryKey string  `json:"category_key"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Unit        string  `json:"unit"`
	SubCategory string  `json:"sub_category"`

	ContractorCostPerUnit decimal.Decimal `json:"contractor_cost_per_unit"`
	ClientPricePerUnit    decimal.Decimal `json:"client_price_per_unit"`
	MaterialCostPerUnit   decimal.Decimal `json:"material_cost_per_unit"`
	HoursPerUnit          decimal.Decimal `json:"hours_per_unit"`
	DesiredProfitPercent  decimal.Decimal `json:"desired_profit_percent"`

	LaborCostPerDay decimal.Decimal `json:"labor_cost_per_day"`
	DailyOutput     decimal.Decimal `json:"daily_output"`
	WastagePercent  decimal.Decimal `json:"wastage_percent"`
	AdditionalCost  decimal.Decimal `json:"additional_cost"`

	IgnoreQuantity bool `json:"ignore_quantity"`
	Active         bool `json:"active"`
}

type CatalogItemListResponse struct {
	Data       []CatalogItemResponse `json:"data"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
}
