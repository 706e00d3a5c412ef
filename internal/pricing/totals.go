package pricing

// AdditionalCost is a project-level extra charged on top of the line items.
// ContractorCost of zero means the extra is pure pass-through: the client
// cost doubles as the contractor cost.
type AdditionalCost struct {
	Cost           float64 `json:"cost"`
	ContractorCost float64 `json:"contractorCost"`
}

// QuoteTotals is the quote-level rollup shown on the summary screen and
// persisted with the quote.
type QuoteTotals struct {
	SubtotalItems  float64 `json:"subtotalItems"`
	Subtotal       float64 `json:"subtotal"` // items + additional costs
	PriceIncrease  float64 `json:"priceIncrease"`
	DiscountAmount float64 `json:"discountAmount"`
	TotalPrice     float64 `json:"totalPrice"`
	TotalCost      float64 `json:"totalCost"`
	Profit         float64 `json:"profit"`
	ProfitPercent  float64 `json:"profitPercent"`
	TotalWorkDays  float64 `json:"totalWorkDays"`
}

// ComputeQuoteTotals sums line items and additional costs into the quote
// total. Price increase is applied before the discount, both as percents of
// the running subtotal. Profit here is total minus contractor cost and may
// go negative — the quote summary shows it either way.
func ComputeQuoteTotals(lines []LineTotals, extras []AdditionalCost, priceIncreasePct, discountPct float64) QuoteTotals {
	var t QuoteTotals
	for _, l := range lines {
		t.SubtotalItems += l.TotalPrice
		t.TotalCost += l.TotalCost
		t.TotalWorkDays += l.WorkDuration
	}

	var extrasPrice float64
	for _, e := range extras {
		extrasPrice += Num(e.Cost)
		if e.ContractorCost > 0 {
			t.TotalCost += Num(e.ContractorCost)
		} else {
			t.TotalCost += Num(e.Cost)
		}
	}
	t.Subtotal = t.SubtotalItems + extrasPrice

	afterIncrease := t.Subtotal + t.Subtotal*Num(priceIncreasePct)/100
	t.PriceIncrease = afterIncrease - t.Subtotal
	t.DiscountAmount = afterIncrease * Num(discountPct) / 100
	t.TotalPrice = afterIncrease - t.DiscountAmount

	t.Profit = t.TotalPrice - t.TotalCost
	t.ProfitPercent = profitPercentOf(t.Profit, t.TotalCost, t.TotalPrice)
	return t
}
