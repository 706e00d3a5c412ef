package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Baseline scenario used across the tiling tests: 50 m² at 80/m² tile cost,
// 20/m² adhesive, 10% wastage, 20 m²/day output, 1000/day labor, 30% markup.
func baselineTilingInputs() (TilingItem, TilingItemData, TilingDefaults) {
	item := TilingItem{Quantity: 50}
	data := TilingItemData{
		MaterialCost:    80,
		AdditionalCost:  20,
		WastagePercent:  10,
		LaborCostPerDay: 1000,
		DailyOutput:     20,
		ProfitPercent:   30,
	}
	return item, data, TilingDefaults{}
}

func TestComputeTilingMetrics_Baseline(t *testing.T) {
	item, data, d := baselineTilingInputs()
	m := ComputeTilingMetrics(item, data, d)

	// material = round(80×50×1.10 + 20×50) = 5400
	assert.Equal(t, 5400.0, m.TotalMaterialCost)
	assert.Equal(t, 2.5, m.TotalWorkDays) // 50/20
	assert.Equal(t, 2500.0, m.TotalLaborCost)
	assert.Equal(t, 7900.0, m.TotalContractorCost)
	assert.Equal(t, 2370.0, m.Profit) // 7900 × 30%
	assert.Equal(t, 10270.0, m.TotalPrice)
	assert.InDelta(t, 205.4, m.PricePerMeter, 1e-9)
}

func TestComputeTilingMetrics_ComplexityScalesLaborOnly(t *testing.T) {
	item, data, d := baselineTilingInputs()
	item.ComplexityMultiplier = 20

	m := ComputeTilingMetrics(item, data, d)

	assert.Equal(t, 3.0, m.TotalWorkDays) // 2.5 × 1.2
	assert.Equal(t, 3000.0, m.TotalLaborCost)
	assert.Equal(t, 8400.0, m.TotalContractorCost)
	assert.Equal(t, 2520.0, m.Profit)
	assert.Equal(t, 10920.0, m.TotalPrice)
	// Material cost must not move with complexity.
	assert.Equal(t, 5400.0, m.TotalMaterialCost)
}

func TestComputeTilingMetrics_WastageScopedToTileCost(t *testing.T) {
	item, data, d := baselineTilingInputs()

	base := ComputeTilingMetrics(item, data, d)
	data.WastagePercent = 20
	bumped := ComputeTilingMetrics(item, data, d)

	// Only the tile term grows: 80×50×0.10 = 400 extra.
	assert.Equal(t, base.TotalMaterialCost+400, bumped.TotalMaterialCost)
	// The adhesive ("black material") term is untouched by wastage.
	assert.Equal(t, base.BlackMaterialCost, bumped.BlackMaterialCost)
	assert.Equal(t, base.TotalLaborCost, bumped.TotalLaborCost)
}

func TestComputeTilingMetrics_PanelWorkDays(t *testing.T) {
	item, data, d := baselineTilingInputs()
	item.PanelQuantity = 10
	data.PanelWorkCapacity = 5

	m := ComputeTilingMetrics(item, data, d)

	assert.Equal(t, 2.5, m.QuantityWorkDays)
	assert.Equal(t, 2.0, m.PanelWorkDays)
	assert.Equal(t, 4.5, m.TotalWorkDays)
	assert.Equal(t, 2500.0, m.QuantityLaborCost)
	assert.Equal(t, 2000.0, m.PanelLaborCost)
}

func TestComputeTilingMetrics_ManualPriceOverride(t *testing.T) {
	item, data, d := baselineTilingInputs()
	item.ManualPrice = 9000
	item.HasManualPrice = true

	m := ComputeTilingMetrics(item, data, d)

	assert.Equal(t, 9000.0, m.TotalPrice)
	assert.Equal(t, 7900.0, m.TotalContractorCost)
	assert.Equal(t, 1100.0, m.Profit) // bypasses the percent formula
}

func TestComputeTilingMetrics_DefaultsFallback(t *testing.T) {
	item := TilingItem{Quantity: 40}
	data := TilingItemData{MaterialCost: 100}
	d := TilingDefaults{
		WastagePercent:  5,
		LaborCostPerDay: 800,
		DailyOutput:     10,
		ProfitPercent:   25,
	}

	m := ComputeTilingMetrics(item, data, d)

	assert.Equal(t, 4200.0, m.TotalMaterialCost) // round(100×40×1.05)
	assert.Equal(t, 4.0, m.TotalWorkDays)
	assert.Equal(t, 3200.0, m.TotalLaborCost)
	assert.Equal(t, 25.0, m.ProfitPercent)
}

func TestComputeTilingMetrics_ZeroQuantitySkipsDivision(t *testing.T) {
	m := ComputeTilingMetrics(TilingItem{}, TilingItemData{}, TilingDefaults{})

	assert.Zero(t, m.TotalWorkDays)
	assert.Zero(t, m.TotalContractorCost)
	assert.Zero(t, m.TotalPrice)
	assert.Zero(t, m.PricePerMeter)
}

func TestComputeTilingMetrics_Idempotent(t *testing.T) {
	item, data, d := baselineTilingInputs()
	item.PanelQuantity = 3
	item.ComplexityMultiplier = 10

	assert.Equal(t,
		ComputeTilingMetrics(item, data, d),
		ComputeTilingMetrics(item, data, d))
}
