package service

import (
	"context"
	"testing"
	"time"

	"quotecraft/internal/dto"
	"quotecraft/internal/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fixedDefaults returns the same stored defaults for every category, letting
// tests exercise the item → user defaults → fallback chain.
type fixedDefaults struct {
	stubDefaults
	d pricing.Defaults
	t pricing.TilingDefaults
}

func (f fixedDefaults) Effective(context.Context, uuid.UUID, string) pricing.Defaults { return f.d }
func (f fixedDefaults) EffectiveTiling(context.Context, uuid.UUID) pricing.TilingDefaults {
	return f.t
}

func TestComputeLine_ElectricalFallbackMarkup(t *testing.T) {
	svc := NewPricingService(stubDefaults{})

	resp, err := svc.ComputeLine(context.Background(), uuid.New(), dto.ComputeLineRequest{
		CategoryKey: "electrical", Quantity: 2, ContractorCostPerUnit: 100,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 40, resp.Result.ProfitPercent, 0.001)
	assert.InDelta(t, 140, resp.Result.SuggestedPrice, 0.001)
	assert.InDelta(t, 280, resp.Result.TotalPrice, 0.001)
	assert.InDelta(t, 200, resp.Result.TotalCost, 0.001)
}

func TestComputeLine_UserDefaultsBeatFallback(t *testing.T) {
	svc := NewPricingService(fixedDefaults{d: pricing.Defaults{ProfitPercent: 20}})

	resp, err := svc.ComputeLine(context.Background(), uuid.New(), dto.ComputeLineRequest{
		CategoryKey: "electrical", Quantity: 1, ContractorCostPerUnit: 100,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 20, resp.Result.ProfitPercent, 0.001)
	assert.InDelta(t, 120, resp.Result.SuggestedPrice, 0.001)
}

func TestComputeLine_ItemProfitBeatsUserDefaults(t *testing.T) {
	svc := NewPricingService(fixedDefaults{d: pricing.Defaults{ProfitPercent: 20}})

	resp, err := svc.ComputeLine(context.Background(), uuid.New(), dto.ComputeLineRequest{
		CategoryKey: "electrical", Quantity: 1, ContractorCostPerUnit: 100, ProfitPercent: 50,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 150, resp.Result.SuggestedPrice, 0.001)
}

func TestComputeLine_DemolitionIgnoresQuantityInTotals(t *testing.T) {
	svc := NewPricingService(stubDefaults{})

	// 16h × (1000/8) = 2000 flat; quantity scales workdays only: 16×3/8 = 6
	resp, err := svc.ComputeLine(context.Background(), uuid.New(), dto.ComputeLineRequest{
		CategoryKey: "demolition", Quantity: 3, HoursPerUnit: 16,
	})
	assert.NoError(t, err)
	assert.True(t, resp.Result.IgnoreQuantity)
	assert.InDelta(t, 2000, resp.Result.TotalCost, 0.001)
	assert.InDelta(t, 2600, resp.Result.TotalPrice, 0.001)
	assert.InDelta(t, 6, resp.Result.WorkDays, 0.001)
}

func TestComputeLine_ManualPriceWinsEvenBelowCost(t *testing.T) {
	svc := NewPricingService(stubDefaults{})
	manual := 90.0

	resp, err := svc.ComputeLine(context.Background(), uuid.New(), dto.ComputeLineRequest{
		CategoryKey: "plumbing", Quantity: 2, ContractorCostPerUnit: 100, ManualPrice: &manual,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 90, resp.Result.ClientPricePerUnit, 0.001)
	assert.InDelta(t, 180, resp.Result.TotalPrice, 0.001)
	assert.InDelta(t, -20, resp.Result.Profit, 0.001)
}

func TestComputeTiling_WastageOnTilesOnly(t *testing.T) {
	svc := NewPricingService(stubDefaults{})

	// tiles 100×10×1.1 = 1100, black material 20×10 = 200 (no wastage)
	resp, err := svc.ComputeTiling(context.Background(), uuid.New(), dto.ComputeTilingRequest{
		Quantity: 10, MaterialCost: 100, AdditionalCost: 20, WastagePercent: 10,
		LaborCostPerDay: 1000, DailyOutput: 5,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 1300, resp.Metrics.TotalMaterialCost, 0.001)
	assert.InDelta(t, 200, resp.Metrics.BlackMaterialCost, 0.001)
}

func TestComputeTiling_ComplexityScalesWorkDaysNotMaterial(t *testing.T) {
	svc := NewPricingService(stubDefaults{})

	resp, err := svc.ComputeTiling(context.Background(), uuid.New(), dto.ComputeTilingRequest{
		Quantity: 10, MaterialCost: 100, LaborCostPerDay: 1000, DailyOutput: 5,
		ComplexityMultiplier: 20,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 2, resp.Metrics.BaseWorkDays, 0.001)
	assert.InDelta(t, 2.4, resp.Metrics.TotalWorkDays, 0.001)
	assert.InDelta(t, 1000, resp.Metrics.TotalMaterialCost, 0.001)
	assert.InDelta(t, 2400, resp.Metrics.TotalLaborCost, 0.001)
}

func TestQuoteTotals_IncreaseBeforeDiscount(t *testing.T) {
	svc := NewPricingService(stubDefaults{})

	resp := svc.QuoteTotals(dto.QuoteTotalsRequest{
		Lines:                []dto.QuoteTotalsLineInput{{TotalCost: 100, TotalPrice: 200}},
		PriceIncreasePercent: 10,
		DiscountPercent:      10,
	})
	// 200 → 220 → 198
	assert.InDelta(t, 20, resp.Totals.PriceIncrease, 0.001)
	assert.InDelta(t, 22, resp.Totals.DiscountAmount, 0.001)
	assert.InDelta(t, 198, resp.Totals.TotalPrice, 0.001)
}

func TestComplexityOptions_FullScale(t *testing.T) {
	svc := NewPricingService(stubDefaults{})

	resp := svc.ComplexityOptions()
	assert.Len(t, resp.Options, 6)
	assert.Equal(t, "none", resp.Options[0].Level)
	assert.InDelta(t, 50, resp.Options[5].Multiplier, 0.001)
}

func TestBuildLine_FlatFeeItemInMultiplyingCategory(t *testing.T) {
	svc := NewPricingService(stubDefaults{})

	li := svc.BuildLine(context.Background(), uuid.New(), dto.QuoteLineInput{
		CategoryKey: "plumbing", Name: "Call-out fee",
		Quantity: 5, ContractorCostPerUnit: 100, IgnoreQuantity: true,
	}, time.Now())
	assert.True(t, li.IgnoreQuantity)
	assert.InDelta(t, 100, li.TotalCost, 0.001)
	assert.InDelta(t, 130, li.TotalPrice, 0.001)
	assert.InDelta(t, 5, li.Quantity, 0.001)
}

func TestBuildLine_DefaultsSourceToManual(t *testing.T) {
	svc := NewPricingService(stubDefaults{})

	li := svc.BuildLine(context.Background(), uuid.New(), dto.QuoteLineInput{
		CategoryKey: "paint", Name: "Interior walls", Quantity: 4, ContractorCostPerUnit: 50,
	}, time.Now())
	assert.Equal(t, pricing.SourceManual, li.Source)
	assert.InDelta(t, 260, li.TotalPrice, 0.001)
}

func TestBuildLine_TilingCarriesEditorMetadata(t *testing.T) {
	svc := NewPricingService(stubDefaults{})

	li := svc.BuildLine(context.Background(), uuid.New(), dto.QuoteLineInput{
		CategoryKey: "tiling", Name: "Kitchen floor",
		Quantity: 10, MaterialCost: 100, LaborCostPerDay: 1000, DailyOutput: 5,
		ComplexityLevel: "medium", ComplexityMultiplier: 20,
		SelectedSize: "60x60", WorkType: "floor",
	}, time.Now())
	assert.Equal(t, "medium", li.ComplexityLevel)
	assert.Equal(t, "60x60", li.SelectedSize)
	assert.Equal(t, "floor", li.WorkType)
	assert.InDelta(t, 2.4, li.WorkDuration, 0.001)
}
