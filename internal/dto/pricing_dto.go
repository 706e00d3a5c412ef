package dto

import "quotecraft/internal/pricing"

// The pricing endpoints are pure calculators: they take raw figures and
// return the engine's result without touching the database, so the client
// can preview a line before saving it. Fields are float64 to match the
// engine; the coercion policy (NaN, negatives, zero quantity) is applied
// inside the engine, not here.

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ComputeLineRequest struct {
	CategoryKey string `json:"category_key" validate:"required"`

	Quantity              float64  `json:"quantity"`
	ContractorCostPerUnit float64  `json:"contractor_cost_per_unit"`
	HoursPerUnit          float64  `json:"hours_per_unit"`
	MaterialCostPerUnit   float64  `json:"material_cost_per_unit"`
	ProfitPercent         float64  `json:"profit_percent"`
	ManualPrice           *float64 `json:"manual_price"`
	IgnoreQuantity        bool     `json:"ignore_quantity"`
}

type ComputeTilingRequest struct {
	Quantity             float64  `json:"quantity"`
	PanelQuantity        float64  `json:"panel_quantity"`
	ComplexityMultiplier float64  `json:"complexity_multiplier"`
	ManualPrice          *float64 `json:"manual_price"`

	MaterialCost      float64 `json:"material_cost"`
	AdditionalCost    float64 `json:"additional_cost"`
	WastagePercent    float64 `json:"wastage_percent"`
	LaborCostPerDay   float64 `json:"labor_cost_per_day"`
	DailyOutput       float64 `json:"daily_output"`
	PanelWorkCapacity float64 `json:"panel_work_capacity"`
	FixedProjectCost  float64 `json:"fixed_project_cost"`
	ProfitPercent     float64 `json:"profit_percent"`
}

type TilingSummaryRequest struct {
	Lines []TilingSummaryLineInput `json:"lines" validate:"required,dive"`
	// Precise skips the whole-day rounding reconciliation.
	Precise bool `json:"precise"`
}

type TilingSummaryLineInput struct {
	Quantity       float64 `json:"quantity"`
	WorkDays       float64 `json:"work_days"`
	MaterialCost   float64 `json:"material_cost"`
	LaborCost      float64 `json:"labor_cost"`
	ContractorCost float64 `json:"contractor_cost"`
	Price          float64 `json:"price"`
	Profit         float64 `json:"profit"`
}

type QuoteTotalsRequest struct {
	Lines []QuoteTotalsLineInput `json:"lines" validate:"dive"`

	AdditionalCosts      []AdditionalCostInput `json:"additional_costs" validate:"dive"`
	PriceIncreasePercent float64               `json:"price_increase_percent"`
	DiscountPercent      float64               `json:"discount_percent"`
}

type QuoteTotalsLineInput struct {
	TotalCost    float64 `json:"total_cost"`
	TotalPrice   float64 `json:"total_price"`
	WorkDuration float64 `json:"work_duration"`
}

type AdditionalCostInput struct {
	Name           string  `json:"name"`
	Cost           float64 `json:"cost"`
	ContractorCost float64 `json:"contractor_cost"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// Compute responses reuse the engine's result structs verbatim; their JSON
// tags are the contract.

type ComputeLineResponse struct {
	CategoryKey string             `json:"category_key"`
	Result      pricing.LineResult `json:"result"`
}

type ComputeTilingResponse struct {
	Metrics pricing.TilingMetrics `json:"metrics"`
}

type TilingSummaryResponse struct {
	Summary pricing.TilingSummary `json:"summary"`
}

type QuoteTotalsResponse struct {
	Totals pricing.QuoteTotals `json:"totals"`
}

type ComplexityOptionsResponse struct {
	Options []pricing.TilingComplexityOption `json:"options"`
}
