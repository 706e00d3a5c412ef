package pricing

// CostModel selects how a category derives the contractor cost of one unit.
type CostModel int

const (
	// DirectCost — the catalog item carries its contractor cost verbatim
	// (electrical, plumbing, paint).
	DirectCost CostModel = iota
	// HoursBased — cost is labor only: hours per unit × day-rate/hours-per-day
	// (demolition).
	HoursBased
	// MaterialPlusHours — material cost per unit plus labor hours
	// (construction).
	MaterialPlusHours
	// TilingComposite — the full tiling calculation; see ComputeTilingMetrics.
	TilingComposite
)

// CategoryConfig parameterizes the shared line calculator for one category.
type CategoryConfig struct {
	ID             string
	Model          CostModel
	IgnoreQuantity bool // flat-fee categories: totals are not multiplied by qty
	RequireName    bool
	HoursPerDay    float64 // defaults to 8 when zero

	// Hardcoded fallbacks, used only when neither the item nor the user's
	// category defaults supply a value.
	FallbackProfitPercent   float64
	FallbackLaborCostPerDay float64
}

// Stock category configurations mirroring the quote-builder editors.
var (
	// Electrical items come from the catalog, so no name is required and the
	// fallback markup is the higher electrical default.
	ElectricalConfig = CategoryConfig{
		ID: "electrical", Model: DirectCost,
		FallbackProfitPercent: 40, FallbackLaborCostPerDay: 1000,
	}
	PlumbingConfig = CategoryConfig{
		ID: "plumbing", Model: DirectCost, RequireName: true,
		FallbackProfitPercent: 30, FallbackLaborCostPerDay: 1000,
	}
	// Demolition quantity is informational only — the hour estimate already
	// covers the whole job, so totals are not multiplied.
	DemolitionConfig = CategoryConfig{
		ID: "demolition", Model: HoursBased, IgnoreQuantity: true,
		RequireName: true, HoursPerDay: 8,
		FallbackProfitPercent: 30, FallbackLaborCostPerDay: 1000,
	}
	ConstructionConfig = CategoryConfig{
		ID: "construction", Model: MaterialPlusHours, RequireName: true, HoursPerDay: 8,
		FallbackProfitPercent: 30, FallbackLaborCostPerDay: 1000,
	}
	PaintConfig = CategoryConfig{
		ID: "paint", Model: DirectCost, RequireName: true,
		FallbackProfitPercent: 30, FallbackLaborCostPerDay: 1000,
	}
	// Tiling goes through the composite calculator, not the shared one; the
	// config only classifies the category for clients.
	TilingConfig = CategoryConfig{
		ID: "tiling", Model: TilingComposite,
		FallbackProfitPercent: 30, FallbackLaborCostPerDay: 1000,
	}
)

// ConfigFor returns the stock configuration for a category id.
// Unknown categories get a direct-cost config so a line always computes.
func ConfigFor(categoryID string) CategoryConfig {
	switch categoryID {
	case "electrical":
		return ElectricalConfig
	case "plumbing":
		return PlumbingConfig
	case "demolition":
		return DemolitionConfig
	case "construction":
		return ConstructionConfig
	case "paint":
		return PaintConfig
	case "tiling":
		return TilingConfig
	default:
		return CategoryConfig{
			ID: categoryID, Model: DirectCost,
			FallbackProfitPercent: 30, FallbackLaborCostPerDay: 1000,
		}
	}
}

// LineInput carries the item-level fields of one line computation.
// Zero values mean "not provided"; the fallback chain fills the gaps.
type LineInput struct {
	Quantity              float64
	ContractorCostPerUnit float64 // DirectCost model
	HoursPerUnit          float64 // HoursBased / MaterialPlusHours models
	MaterialCostPerUnit   float64 // MaterialPlusHours model
	ProfitPercent         float64 // item-level override of the defaults

	// ManualPrice replaces the suggested per-unit client price verbatim.
	ManualPrice    float64
	HasManualPrice bool

	// IgnoreQuantity marks a flat-fee line: totals are not multiplied by
	// quantity even when the category normally multiplies.
	IgnoreQuantity bool
}

// Defaults are the user's per-category pricing defaults.
type Defaults struct {
	ProfitPercent   float64
	LaborCostPerDay float64
}

// LineResult is the normalized outcome of one line computation.
type LineResult struct {
	Quantity              float64 `json:"quantity"`
	ContractorCostPerUnit float64 `json:"contractorCostPerUnit"`
	ClientPricePerUnit    float64 `json:"clientPricePerUnit"`
	SuggestedPrice        float64 `json:"suggestedPrice"`
	TotalCost             float64 `json:"totalCost"`
	TotalPrice            float64 `json:"totalPrice"`
	Profit                float64 `json:"profit"`
	ProfitPercent         float64 `json:"profitPercent"`
	WorkDays              float64 `json:"workDays"`
	IgnoreQuantity        bool    `json:"ignoreQuantity"`
}

// ComputeLine runs the parameterized calculator shared by the simple
// categories. Profit percent priority: item → user defaults → config
// fallback. A flat-fee line comes from the category config or the item's
// own flag, whichever is set. Invalid inputs coerce silently (see package
// doc).
func ComputeLine(cfg CategoryConfig, in LineInput, d Defaults) LineResult {
	qty := Quantity(in.Quantity)
	hoursPerDay := firstPositive(8, cfg.HoursPerDay)
	laborCostPerDay := firstPositive(cfg.FallbackLaborCostPerDay, d.LaborCostPerDay)
	profitPercent := firstPositive(cfg.FallbackProfitPercent, in.ProfitPercent, d.ProfitPercent)

	var unitCost float64
	switch cfg.Model {
	case HoursBased:
		unitCost = Num(in.HoursPerUnit) * (laborCostPerDay / hoursPerDay)
	case MaterialPlusHours:
		unitCost = Num(in.MaterialCostPerUnit) + Num(in.HoursPerUnit)*(laborCostPerDay/8)
	default:
		unitCost = Num(in.ContractorCostPerUnit)
	}

	suggested := Round(unitCost * (1 + profitPercent/100))
	unitPrice := suggested
	if in.HasManualPrice {
		// Override wins verbatim, even below cost.
		unitPrice = Num(in.ManualPrice)
	}

	flatFee := cfg.IgnoreQuantity || in.IgnoreQuantity
	useQty := qty
	if flatFee {
		useQty = 1
	}
	totalCost := Round(unitCost * useQty)
	totalPrice := Round(unitPrice * useQty)

	workDays := 0.0
	if cfg.Model == HoursBased || cfg.Model == MaterialPlusHours {
		workDays = Num(in.HoursPerUnit) * qty / 8
	}

	return LineResult{
		Quantity:              qty,
		ContractorCostPerUnit: unitCost,
		ClientPricePerUnit:    unitPrice,
		SuggestedPrice:        suggested,
		TotalCost:             totalCost,
		TotalPrice:            totalPrice,
		Profit:                totalPrice - totalCost,
		ProfitPercent:         profitPercent,
		WorkDays:              workDays,
		IgnoreQuantity:        flatFee,
	}
}
