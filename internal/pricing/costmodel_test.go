package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLine_DirectCost(t *testing.T) {
	res := ComputeLine(ElectricalConfig, LineInput{
		Quantity:              4,
		ContractorCostPerUnit: 200,
		ProfitPercent:         25,
	}, Defaults{})

	assert.Equal(t, 200.0, res.ContractorCostPerUnit)
	assert.Equal(t, 250.0, res.ClientPricePerUnit) // round(200*1.25)
	assert.Equal(t, 800.0, res.TotalCost)
	assert.Equal(t, 1000.0, res.TotalPrice)
	assert.Equal(t, 200.0, res.Profit)
}

func TestComputeLine_HoursBased(t *testing.T) {
	// Demolition mode with quantity counted in totals:
	// 4h × (1000/8) = 500 per unit; ×3 units; 30% markup.
	cfg := DemolitionConfig
	cfg.IgnoreQuantity = false

	res := ComputeLine(cfg, LineInput{
		Quantity:     3,
		HoursPerUnit: 4,
	}, Defaults{LaborCostPerDay: 1000, ProfitPercent: 30})

	assert.Equal(t, 500.0, res.ContractorCostPerUnit)
	assert.Equal(t, 650.0, res.ClientPricePerUnit)
	assert.Equal(t, 1500.0, res.TotalCost)
	assert.Equal(t, 1950.0, res.TotalPrice)
	assert.Equal(t, 450.0, res.Profit)
	assert.Equal(t, 1.5, res.WorkDays) // 4h × 3 / 8
}

func TestComputeLine_MaterialPlusHours(t *testing.T) {
	res := ComputeLine(ConstructionConfig, LineInput{
		Quantity:            2,
		HoursPerUnit:        8,
		MaterialCostPerUnit: 300,
	}, Defaults{LaborCostPerDay: 1200, ProfitPercent: 30})

	// 300 + 8×(1200/8) = 1500 per unit
	assert.Equal(t, 1500.0, res.ContractorCostPerUnit)
	assert.Equal(t, 1950.0, res.ClientPricePerUnit)
	assert.Equal(t, 3000.0, res.TotalCost)
	assert.Equal(t, 3900.0, res.TotalPrice)
	assert.Equal(t, 2.0, res.WorkDays)
}

func TestComputeLine_IgnoreQuantity(t *testing.T) {
	res := ComputeLine(DemolitionConfig, LineInput{
		Quantity:     5,
		HoursPerUnit: 4,
	}, Defaults{LaborCostPerDay: 1000, ProfitPercent: 30})

	// Totals equal the per-unit values regardless of quantity.
	assert.Equal(t, 5.0, res.Quantity) // quantity still recorded
	assert.Equal(t, res.ContractorCostPerUnit, res.TotalCost)
	assert.Equal(t, res.ClientPricePerUnit, res.TotalPrice)
	assert.True(t, res.IgnoreQuantity)
}

func TestComputeLine_ItemLevelFlatFee(t *testing.T) {
	in := LineInput{
		Quantity:              5,
		ContractorCostPerUnit: 100,
		IgnoreQuantity:        true,
	}

	// Plumbing normally multiplies by quantity; the item flag makes this
	// line a flat fee.
	res := ComputeLine(PlumbingConfig, in, Defaults{})
	assert.Equal(t, 100.0, res.TotalCost)
	assert.Equal(t, 130.0, res.TotalPrice)
	assert.True(t, res.IgnoreQuantity)

	// Without the flag the same line multiplies.
	in.IgnoreQuantity = false
	res = ComputeLine(PlumbingConfig, in, Defaults{})
	assert.Equal(t, 500.0, res.TotalCost)
	assert.Equal(t, 650.0, res.TotalPrice)
	assert.False(t, res.IgnoreQuantity)
}

func TestComputeLine_ManualPriceOverride(t *testing.T) {
	res := ComputeLine(PlumbingConfig, LineInput{
		Quantity:              1,
		ContractorCostPerUnit: 700,
		ManualPrice:           600, // below cost — wins verbatim
		HasManualPrice:        true,
	}, Defaults{ProfitPercent: 30})

	assert.Equal(t, 600.0, res.TotalPrice)
	assert.Equal(t, -100.0, res.Profit) // unclamped at line level
	assert.Equal(t, 910.0, res.SuggestedPrice)
}

func TestComputeLine_ProfitPercentPriority(t *testing.T) {
	in := LineInput{Quantity: 1, ContractorCostPerUnit: 100}

	// Item value wins over defaults.
	res := ComputeLine(PlumbingConfig, LineInput{Quantity: 1, ContractorCostPerUnit: 100, ProfitPercent: 50}, Defaults{ProfitPercent: 20})
	assert.Equal(t, 150.0, res.ClientPricePerUnit)

	// Defaults win over the config fallback.
	res = ComputeLine(PlumbingConfig, in, Defaults{ProfitPercent: 20})
	assert.Equal(t, 120.0, res.ClientPricePerUnit)

	// Config fallback when nothing else is set.
	res = ComputeLine(PlumbingConfig, in, Defaults{})
	assert.Equal(t, 130.0, res.ClientPricePerUnit)
	res = ComputeLine(ElectricalConfig, in, Defaults{})
	assert.Equal(t, 140.0, res.ClientPricePerUnit)
}

func TestComputeLine_BlankInputsYieldZeroLine(t *testing.T) {
	res := ComputeLine(ElectricalConfig, LineInput{}, Defaults{})

	assert.Equal(t, 1.0, res.Quantity) // quantity coerces to 1
	assert.Zero(t, res.TotalCost)
	assert.Zero(t, res.TotalPrice)
	assert.Zero(t, res.Profit)
}

func TestComputeLine_ProfitEqualsPriceMinusCost(t *testing.T) {
	configs := []CategoryConfig{ElectricalConfig, PlumbingConfig, DemolitionConfig, ConstructionConfig, PaintConfig}
	inputs := []LineInput{
		{Quantity: 3, ContractorCostPerUnit: 137.5},
		{Quantity: 7, HoursPerUnit: 2.25},
		{Quantity: 1, HoursPerUnit: 12, MaterialCostPerUnit: 89.9},
		{Quantity: 4, ContractorCostPerUnit: 250, ManualPrice: 199, HasManualPrice: true},
	}
	for _, cfg := range configs {
		for _, in := range inputs {
			res := ComputeLine(cfg, in, Defaults{LaborCostPerDay: 950, ProfitPercent: 35})
			assert.Equal(t, res.TotalPrice-res.TotalCost, res.Profit,
				"category %s", cfg.ID)
		}
	}
}

func TestComputeLine_Idempotent(t *testing.T) {
	in := LineInput{Quantity: 6, HoursPerUnit: 3.5, MaterialCostPerUnit: 42}
	d := Defaults{LaborCostPerDay: 1100, ProfitPercent: 28}

	first := ComputeLine(ConstructionConfig, in, d)
	second := ComputeLine(ConstructionConfig, in, d)
	assert.Equal(t, first, second)
}

func TestAssembleLine(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	res := ComputeLine(PlumbingConfig, LineInput{Quantity: 2, ContractorCostPerUnit: 400}, Defaults{ProfitPercent: 30})

	li := AssembleLine(LineMeta{
		CategoryID:   "plumbing",
		CategoryName: "Plumbing",
		Source:       SourceManual,
		Name:         "Replace main valve",
		Unit:         "unit",
	}, res, at)

	assert.Equal(t, "plumbing_1700000000000", li.ID)
	assert.Equal(t, res.TotalPrice, li.TotalPrice)
	assert.Equal(t, res.TotalCost, li.TotalCost)
	assert.Equal(t, li.TotalPrice-li.TotalCost, li.Profit)
	assert.Equal(t, 2.0, li.Quantity)
}
