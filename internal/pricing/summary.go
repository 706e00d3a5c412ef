package pricing

import "math"

// labor rounding threshold — deltas below this are noise, not a real
// extra work day.
const laborDeltaEpsilon = 0.01

// TilingSummaryLine is the per-line slice of metrics the tiling summary
// needs. Built from TilingMetrics (or stored quote lines).
type TilingSummaryLine struct {
	Quantity       float64
	WorkDays       float64 // unrounded
	MaterialCost   float64
	LaborCost      float64
	ContractorCost float64
	Price          float64
	Profit         float64
}

// TilingSummary aggregates all tiling lines of a quote.
type TilingSummary struct {
	TotalQuantity       float64 `json:"totalQuantity"`
	TotalWorkDays       float64 `json:"totalWorkDays"`     // final (rounded or precise)
	UnroundedWorkDays   float64 `json:"unroundedWorkDays"` // always the raw sum
	TotalMaterialCost   float64 `json:"totalMaterialCost"`
	TotalLaborCost      float64 `json:"totalLaborCost"`
	TotalContractorCost float64 `json:"totalContractorCost"`
	TotalPrice          float64 `json:"totalPrice"`
	Profit              float64 `json:"profit"`
	PricePerMeter       float64 `json:"pricePerMeter"`
	CostPerMeter        float64 `json:"costPerMeter"`
	ProfitPercent       float64 `json:"profitPercent"`
}

// SummarizeTiling sums tiling lines into a category summary.
//
// With precise=false (the default mode) the summed work days are rounded up
// to whole days and the labor cost grows accordingly. The extra labor is
// then pushed through contractor cost, and profit is re-derived from the
// pre-rounding profit ratio so that rounding preserves the profit
// *percentage*, not the absolute profit — otherwise rounding would silently
// eat margin.
func SummarizeTiling(lines []TilingSummaryLine, precise bool) TilingSummary {
	var s TilingSummary
	for _, l := range lines {
		s.TotalQuantity += l.Quantity
		s.UnroundedWorkDays += l.WorkDays
		s.TotalMaterialCost += l.MaterialCost
		s.TotalLaborCost += l.LaborCost
		s.TotalContractorCost += l.ContractorCost
		s.TotalPrice += l.Price
		s.Profit += l.Profit
	}

	if precise {
		s.TotalWorkDays = s.UnroundedWorkDays
	} else {
		s.TotalWorkDays = math.Ceil(s.UnroundedWorkDays)

		dayRate := 0.0
		if s.UnroundedWorkDays > 0 {
			dayRate = s.TotalLaborCost / s.UnroundedWorkDays
		}
		finalLaborCost := s.TotalWorkDays * dayRate

		delta := finalLaborCost - s.TotalLaborCost
		if math.Abs(delta) > laborDeltaEpsilon {
			profitRatio := 0.0
			if s.TotalContractorCost > 0 {
				profitRatio = s.Profit / s.TotalContractorCost
			}
			s.TotalContractorCost += delta
			s.Profit = s.TotalContractorCost * profitRatio
			s.TotalPrice = s.TotalContractorCost + s.Profit
		}
		s.TotalLaborCost = finalLaborCost
	}

	if s.TotalQuantity > 0 {
		s.PricePerMeter = s.TotalPrice / s.TotalQuantity
		s.CostPerMeter = s.TotalContractorCost / s.TotalQuantity
	}
	s.ProfitPercent = profitPercentOf(s.Profit, s.TotalContractorCost, s.TotalPrice)
	return s
}

// CategorySummary is the generic rollup of one category's quote lines.
type CategorySummary struct {
	TotalCost  float64 `json:"totalCost"`
	TotalPrice float64 `json:"totalPrice"`
	Profit     float64 `json:"profit"`
	ItemCount  int     `json:"itemCount"`
}

// SummarizeCategory sums line totals for one category. Profit is clamped at
// zero here; line-level profit stays unclamped. The asymmetry is
// longstanding display behavior and is kept as is.
func SummarizeCategory(lines []LineTotals) CategorySummary {
	var s CategorySummary
	for _, l := range lines {
		s.TotalCost += l.TotalCost
		s.TotalPrice += l.TotalPrice
		s.ItemCount++
	}
	s.Profit = math.Max(0, s.TotalPrice-s.TotalCost)
	return s
}

// LineTotals is the minimal line shape summaries and totals consume.
type LineTotals struct {
	TotalCost    float64
	TotalPrice   float64
	WorkDuration float64
}

// profitPercentOf is the display rule used by every summary: percent of
// cost, or 100 when there is price but no cost at all.
func profitPercentOf(profit, cost, price float64) float64 {
	if cost > 0 {
		return profit / cost * 100
	}
	if price > 0 {
		return 100
	}
	return 0
}
