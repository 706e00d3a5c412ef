package dto

import (
	"time"

	"quotecraft/internal/pricing"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// QuoteLineInput is one raw line as the editor sends it. The server runs it
// through the pricing engine and stores the computed row; client-side
// figures for price, cost and profit are never trusted.
type QuoteLineInput struct {
	CategoryKey string  `json:"category_key" validate:"required"`
	Source      string  `json:"source"       validate:"omitempty,oneof=catalog manual subcontractor"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Unit        string  `json:"unit"`

	Quantity              float64  `json:"quantity"`
	ContractorCostPerUnit float64  `json:"contractor_cost_per_unit"`
	HoursPerUnit          float64  `json:"hours_per_unit"`
	MaterialCostPerUnit   float64  `json:"material_cost_per_unit"`
	ProfitPercent         float64  `json:"profit_percent"`
	ManualPrice           *float64 `json:"manual_price"`

	// IgnoreQuantity marks a flat-fee line whose totals are not multiplied
	// by quantity (e.g. a fixed call-out charge in a per-unit category).
	IgnoreQuantity bool `json:"ignore_quantity"`

	// Tiling-only fields; ignored for other categories.
	PanelQuantity        float64 `json:"panel_quantity"`
	ComplexityLevel      string  `json:"complexity_level"`
	ComplexityMultiplier float64 `json:"complexity_multiplier"`
	SelectedSize         string  `json:"selected_size"`
	WorkType             string  `json:"work_type"`
	MaterialCost         float64 `json:"material_cost"`
	WastagePercent       float64 `json:"wastage_percent"`
	LaborCostPerDay      float64 `json:"labor_cost_per_day"`
	DailyOutput          float64 `json:"daily_output"`
	PanelWorkCapacity    float64 `json:"panel_work_capacity"`
	FixedProjectCost     float64 `json:"fixed_project_cost"`
	AdditionalCost       float64 `json:"additional_cost"`
}

type PaymentTermInput struct {
	Label   string  `json:"label"   validate:"required"`
	Percent float64 `json:"percent" validate:"gte=0,lte=100"`
	DueOn   string  `json:"due_on"`
}

type CreateQuoteRequest struct {
	Title          *string `json:"title"`
	ProjectName    *string `json:"project_name"`
	ProjectAddress *string `json:"project_address"`
	ClientName     *string `json:"client_name"`
	ClientEmail    *string `json:"client_email" validate:"omitempty,email"`
	ClientPhone    *string `json:"client_phone"`

	Items           []QuoteLineInput      `json:"items"            validate:"dive"`
	AdditionalCosts []AdditionalCostInput `json:"additional_costs" validate:"dive"`
	PaymentTerms    []PaymentTermInput    `json:"payment_terms"    validate:"dive"`

	DiscountPercent      float64 `json:"discount_percent"       validate:"gte=0,lte=100"`
	PriceIncreasePercent float64 `json:"price_increase_percent" validate:"gte=0"`

	Notes      *string    `json:"notes"`
	ValidUntil *time.Time `json:"valid_until"`
}

type UpdateQuoteRequest struct {
	Title          *string `json:"title"`
	ProjectName    *string `json:"project_name"`
	ProjectAddress *string `json:"project_address"`
	ClientName     *string `json:"client_name"`
	ClientEmail    *string `json:"client_email" validate:"omitempty,email"`
	ClientPhone    *string `json:"client_phone"`

	// A non-nil slice replaces the quote's line set wholesale and triggers
	// a totals recompute.
	Items           *[]QuoteLineInput      `json:"items"            validate:"omitempty,dive"`
	AdditionalCosts *[]AdditionalCostInput `json:"additional_costs" validate:"omitempty,dive"`
	PaymentTerms    *[]PaymentTermInput    `json:"payment_terms"    validate:"omitempty,dive"`

	DiscountPercent      *float64 `json:"discount_percent"       validate:"omitempty,gte=0,lte=100"`
	PriceIncreasePercent *float64 `json:"price_increase_percent" validate:"omitempty,gte=0"`

	Status     *string    `json:"status" validate:"omitempty,oneof=draft sent approved rejected expired"`
	Notes      *string    `json:"notes"`
	ValidUntil *time.Time `json:"valid_until"`
}

type SendQuoteRequest struct {
	// Email overrides the quote's stored client email when set.
	Email   *string `json:"email"   validate:"omitempty,email"`
	Message *string `json:"message" validate:"omitempty,max=2000"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type QuoteFilter struct {
	Status     string `form:"status"`
	ClientName string `form:"client"`
	Project    string `form:"project"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type QuoteResponse struct {
	ID          string `json:"id"`
	QuoteNumber string `json:"quote_number"`
	Status      string `json:"status"`

	Title          *string `json:"title"`
	ProjectName    *string `json:"project_name"`
	ProjectAddress *string `json:"project_address"`
	ClientName     *string `json:"client_name"`
	ClientEmail    *string `json:"client_email"`
	ClientPhone    *string `json:"client_phone"`

	Items           []pricing.LineItem    `json:"items"`
	AdditionalCosts []AdditionalCostInput `json:"additional_costs"`
	PaymentTerms    []PaymentTermInput    `json:"payment_terms"`

	DiscountPercent      decimal.Decimal `json:"discount_percent"`
	PriceIncreasePercent decimal.Decimal `json:"price_increase_percent"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	TotalPrice           decimal.Decimal `json:"total_price"`
	ProfitAmount         decimal.Decimal `json:"profit_amount"`
	ProfitPercent        decimal.Decimal `json:"profit_percent"`
	WorkDays             decimal.Decimal `json:"work_days"`

	Notes      *string    `json:"notes"`
	ValidUntil *time.Time `json:"valid_until"`
	SentAt     *time.Time `json:"sent_at"`
	ApprovedAt *time.Time `json:"approved_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

type QuoteListResponse struct {
	Data       []QuoteResponse `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}
