package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type UpsertDefaultsRequest struct {
	ProfitPercent   decimal.Decimal `json:"profit_percent"     validate:"gte=0"`
	LaborCostPerDay decimal.Decimal `json:"labor_cost_per_day" validate:"gte=0"`
	HoursPerDay     decimal.Decimal `json:"hours_per_day"      validate:"gte=0"`

	// Tiling-only defaults; accepted and stored as zero for other categories.
	WastagePercent    decimal.Decimal `json:"wastage_percent"     validate:"gte=0"`
	DailyOutput       decimal.Decimal `json:"daily_output"        validate:"gte=0"`
	PanelWorkCapacity decimal.Decimal `json:"panel_work_capacity" validate:"gte=0"`
	AdditionalCost    decimal.Decimal `json:"additional_cost"     validate:"gte=0"`
	FixedProjectCost  decimal.Decimal `json:"fixed_project_cost"  validate:"gte=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DefaultsResponse struct {
	CategoryKey     string          `json:"category_key"`
	ProfitPercent   decimal.Decimal `json:"profit_percent"`
	LaborCostPerDay decimal.Decimal `json:"labor_cost_per_day"`
	HoursPerDay     decimal.Decimal `json:"hours_per_day"`

	WastagePercent    decimal.Decimal `json:"wastage_percent"`
	DailyOutput       decimal.Decimal `json:"daily_output"`
	PanelWorkCapacity decimal.Decimal `json:"panel_work_capacity"`
	AdditionalCost    decimal.Decimal `json:"additional_cost"`
	FixedProjectCost  decimal.Decimal `json:"fixed_project_cost"`
}
