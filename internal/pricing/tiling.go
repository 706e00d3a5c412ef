package pricing

// Tiling is the one composite cost model: daily-output labor days plus
// panel-capacity labor days, a complexity multiplier on work days only, and
// wastage on the primary material line only.

// TilingComplexityOption is one step of the complexity scale (0–50% in 10%
// increments). The multiplier inflates work days, never material cost.
type TilingComplexityOption struct {
	Level      string  `json:"level"`
	Multiplier float64 `json:"multiplier"` // percent added to work days
}

// TilingComplexityOptions is the scale offered by the tiling editor.
var TilingComplexityOptions = []TilingComplexityOption{
	{Level: "none", Multiplier: 0},
	{Level: "low", Multiplier: 10},
	{Level: "medium", Multiplier: 20},
	{Level: "high", Multiplier: 30},
	{Level: "very_high", Multiplier: 40},
	{Level: "extreme", Multiplier: 50},
}

// TilingItem is the quote-line side of a tiling computation.
type TilingItem struct {
	Quantity             float64 // square meters
	PanelQuantity        float64
	ComplexityMultiplier float64 // percent, 0–50

	ManualPrice    float64
	HasManualPrice bool
}

// TilingItemData carries the per-item cost knobs saved with the catalog
// entry. Zero fields fall through to TilingDefaults.
type TilingItemData struct {
	MaterialCost      float64 // tile cost per m²
	AdditionalCost    float64 // adhesive / "black material" per m², never wastage-adjusted
	WastagePercent    float64
	LaborCostPerDay   float64
	DailyOutput       float64 // m² laid per work day
	PanelWorkCapacity float64 // panels per work day
	FixedProjectCost  float64
	ProfitPercent     float64
}

// TilingDefaults are the user's tiling settings, used as fallback per knob.
type TilingDefaults struct {
	AdditionalCost    float64
	WastagePercent    float64
	LaborCostPerDay   float64
	DailyOutput       float64
	PanelWorkCapacity float64
	FixedProjectCost  float64
	ProfitPercent     float64
}

// TilingMetrics is the full breakdown of one tiling line.
type TilingMetrics struct {
	TotalPrice          float64 `json:"totalPrice"`
	PricePerMeter       float64 `json:"pricePerMeter"`
	TotalContractorCost float64 `json:"totalContractorCost"`
	Profit              float64 `json:"profit"`
	ProfitPercent       float64 `json:"profitPercent"`

	TotalMaterialCost float64 `json:"totalMaterialCost"`
	BlackMaterialCost float64 `json:"blackMaterialCost"`
	TotalLaborCost    float64 `json:"totalLaborCost"`
	FixedProjectCost  float64 `json:"fixedProjectCost"`

	// Work-day split, kept separate so the editor can show the complexity
	// surcharge and the panel share on their own.
	TotalWorkDays     float64 `json:"totalWorkDays"`
	BaseWorkDays      float64 `json:"baseWorkDays"`
	BaseLaborCost     float64 `json:"baseLaborCost"`
	QuantityWorkDays  float64 `json:"quantityWorkDays"`
	PanelWorkDays     float64 `json:"panelWorkDays"`
	QuantityLaborCost float64 `json:"quantityLaborCost"`
	PanelLaborCost    float64 `json:"panelLaborCost"`
}

// ComputeTilingMetrics runs the tiling composite model for one line.
//
// Ordering rules this function must preserve:
//   - wastage applies to the tile cost term only, never the additional
//     ("black") material term;
//   - the complexity multiplier scales work days (and therefore labor cost)
//     and must not touch material cost;
//   - profit percent is a markup on contractor cost, so the resulting price
//     is cost plus markup, not a margin of the price.
func ComputeTilingMetrics(item TilingItem, data TilingItemData, d TilingDefaults) TilingMetrics {
	quantity := Num(item.Quantity)
	panelQuantity := Num(item.PanelQuantity)

	laborCostPerDay := firstPositive(0, data.LaborCostPerDay, d.LaborCostPerDay)
	dailyOutput := firstPositive(1, data.DailyOutput, d.DailyOutput)
	panelCapacity := firstPositive(1, data.PanelWorkCapacity, d.PanelWorkCapacity)
	complexityMultiplier := Num(item.ComplexityMultiplier) / 100

	materialCostPerMeter := Num(data.MaterialCost)
	additionalPerMeter := firstPositive(0, data.AdditionalCost, d.AdditionalCost)
	wastagePercent := firstPositive(0, data.WastagePercent, d.WastagePercent)

	tilesWithWastage := materialCostPerMeter * quantity * (1 + wastagePercent/100)
	blackMaterial := additionalPerMeter * quantity
	totalMaterialCost := Round(tilesWithWastage + blackMaterial)

	var quantityWorkDays, panelWorkDays float64
	if quantity > 0 {
		quantityWorkDays = quantity / dailyOutput
	}
	if panelQuantity > 0 {
		panelWorkDays = panelQuantity / panelCapacity
	}
	baseWorkDays := quantityWorkDays + panelWorkDays
	totalWorkDays := baseWorkDays * (1 + complexityMultiplier)

	baseLaborCost := baseWorkDays * laborCostPerDay
	totalLaborCost := totalWorkDays * laborCostPerDay

	fixedProjectCost := firstPositive(0, data.FixedProjectCost, d.FixedProjectCost)
	totalContractorCost := totalMaterialCost + totalLaborCost + fixedProjectCost

	profitPercent := firstPositive(30, data.ProfitPercent, d.ProfitPercent)
	profit := totalContractorCost * (profitPercent / 100)
	totalPrice := totalContractorCost + profit

	if item.HasManualPrice {
		totalPrice = Num(item.ManualPrice)
		profit = totalPrice - totalContractorCost
	}

	pricePerMeter := 0.0
	if quantity > 0 {
		pricePerMeter = totalPrice / quantity
	}

	return TilingMetrics{
		TotalPrice:          totalPrice,
		PricePerMeter:       pricePerMeter,
		TotalContractorCost: totalContractorCost,
		Profit:              profit,
		ProfitPercent:       profitPercent,
		TotalMaterialCost:   totalMaterialCost,
		BlackMaterialCost:   blackMaterial,
		TotalLaborCost:      totalLaborCost,
		FixedProjectCost:    fixedProjectCost,
		TotalWorkDays:       totalWorkDays,
		BaseWorkDays:        baseWorkDays,
		BaseLaborCost:       baseLaborCost,
		QuantityWorkDays:    quantityWorkDays,
		PanelWorkDays:       panelWorkDays,
		QuantityLaborCost:   quantityWorkDays * laborCostPerDay,
		PanelLaborCost:      panelWorkDays * laborCostPerDay,
	}
}
