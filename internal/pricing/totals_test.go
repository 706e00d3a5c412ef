package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuoteTotals_Basic(t *testing.T) {
	lines := []LineTotals{
		{TotalCost: 7900, TotalPrice: 10270, WorkDuration: 2.5},
		{TotalCost: 1500, TotalPrice: 1950, WorkDuration: 1.5},
	}

	tot := ComputeQuoteTotals(lines, nil, 0, 0)

	assert.Equal(t, 12220.0, tot.SubtotalItems)
	assert.Equal(t, 12220.0, tot.TotalPrice)
	assert.Equal(t, 9400.0, tot.TotalCost)
	assert.Equal(t, 2820.0, tot.Profit)
	assert.Equal(t, 4.0, tot.TotalWorkDays)
}

func TestComputeQuoteTotals_AdditionalCosts(t *testing.T) {
	lines := []LineTotals{{TotalCost: 1000, TotalPrice: 1300}}
	extras := []AdditionalCost{
		{Cost: 500},                      // pass-through: cost doubles as contractor cost
		{Cost: 400, ContractorCost: 250}, // own contractor cost
	}

	tot := ComputeQuoteTotals(lines, extras, 0, 0)

	assert.Equal(t, 2200.0, tot.Subtotal) // 1300 + 500 + 400
	assert.Equal(t, 1750.0, tot.TotalCost)
	assert.Equal(t, 450.0, tot.Profit)
}

func TestComputeQuoteTotals_IncreaseThenDiscount(t *testing.T) {
	lines := []LineTotals{{TotalCost: 800, TotalPrice: 1000}}

	tot := ComputeQuoteTotals(lines, nil, 10, 5)

	// 1000 → +10% = 1100 → -5% = 1045
	assert.InDelta(t, 100.0, tot.PriceIncrease, 1e-9)
	assert.InDelta(t, 55.0, tot.DiscountAmount, 1e-9)
	assert.InDelta(t, 1045.0, tot.TotalPrice, 1e-9)
	assert.InDelta(t, 245.0, tot.Profit, 1e-9)
}

func TestComputeQuoteTotals_ProfitPercentRules(t *testing.T) {
	// Percent of cost when cost exists.
	tot := ComputeQuoteTotals([]LineTotals{{TotalCost: 1000, TotalPrice: 1300}}, nil, 0, 0)
	assert.InDelta(t, 30.0, tot.ProfitPercent, 1e-9)

	// 100 when there is price but no cost.
	tot = ComputeQuoteTotals([]LineTotals{{TotalPrice: 500}}, nil, 0, 0)
	assert.Equal(t, 100.0, tot.ProfitPercent)

	// 0 on the empty quote.
	tot = ComputeQuoteTotals(nil, nil, 0, 0)
	assert.Zero(t, tot.ProfitPercent)
}

func TestComputeQuoteTotals_NegativeProfitNotClamped(t *testing.T) {
	tot := ComputeQuoteTotals([]LineTotals{{TotalCost: 1000, TotalPrice: 900}}, nil, 0, 0)
	assert.Equal(t, -100.0, tot.Profit)
}

func TestNum_CoercesGarbage(t *testing.T) {
	assert.Zero(t, Num(math.NaN()))
	assert.Zero(t, Num(math.Inf(1)))
	assert.Zero(t, Num(-5))
	assert.Equal(t, 3.5, Num(3.5))
}

func TestQuantity_CoercesToAtLeastOne(t *testing.T) {
	assert.Equal(t, 1.0, Quantity(0))
	assert.Equal(t, 1.0, Quantity(-4))
	assert.Equal(t, 1.0, Quantity(math.NaN()))
	assert.Equal(t, 2.5, Quantity(2.5))
}
