package service

import (
	"context"
	"time"

	"quotecraft/internal/dto"
	"quotecraft/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingService exposes the calculation engine to the API. The compute
// methods are pure previews — no persistence — but they still resolve the
// caller's stored category defaults so previews match saved quotes.
type PricingService interface {
	ComputeLine(ctx context.Context, userID uuid.UUID, req dto.ComputeLineRequest) (*dto.ComputeLineResponse, error)
	ComputeTiling(ctx context.Context, userID uuid.UUID, req dto.ComputeTilingRequest) (*dto.ComputeTilingResponse, error)
	SummarizeTiling(req dto.TilingSummaryRequest) *dto.TilingSummaryResponse
	QuoteTotals(req dto.QuoteTotalsRequest) *dto.QuoteTotalsResponse
	ComplexityOptions() *dto.ComplexityOptionsResponse

	// BuildLine turns one raw editor row into the normalized quote row that
	// is stored in the items JSONB column.
	BuildLine(ctx context.Context, userID uuid.UUID, in dto.QuoteLineInput, at time.Time) pricing.LineItem
}

type pricingService struct {
	defaults DefaultsService
}

func NewPricingService(defaults DefaultsService) PricingService {
	return &pricingService{defaults: defaults}
}

func (s *pricingService) ComputeLine(ctx context.Context, userID uuid.UUID, req dto.ComputeLineRequest) (*dto.ComputeLineResponse, error) {
	cfg := pricing.ConfigFor(req.CategoryKey)
	d := s.defaults.Effective(ctx, userID, req.CategoryKey)

	in := pricing.LineInput{
		Quantity:              req.Quantity,
		ContractorCostPerUnit: req.ContractorCostPerUnit,
		HoursPerUnit:          req.HoursPerUnit,
		MaterialCostPerUnit:   req.MaterialCostPerUnit,
		ProfitPercent:         req.ProfitPercent,
		IgnoreQuantity:        req.IgnoreQuantity,
	}
	if req.ManualPrice != nil {
		in.ManualPrice = *req.ManualPrice
		in.HasManualPrice = true
	}

	return &dto.ComputeLineResponse{
		CategoryKey: req.CategoryKey,
		Result:      pricing.ComputeLine(cfg, in, d),
	}, nil
}

func (s *pricingService) ComputeTiling(ctx context.Context, userID uuid.UUID, req dto.ComputeTilingRequest) (*dto.ComputeTilingResponse, error) {
	item := pricing.TilingItem{
		Quantity:             req.Quantity,
		PanelQuantity:        req.PanelQuantity,
		ComplexityMultiplier: req.ComplexityMultiplier,
	}
	if req.ManualPrice != nil {
		item.ManualPrice = *req.ManualPrice
		item.HasManualPrice = true
	}
	data := pricing.TilingItemData{
		MaterialCost:      req.MaterialCost,
		AdditionalCost:    req.AdditionalCost,
		WastagePercent:    req.WastagePercent,
		LaborCostPerDay:   req.LaborCostPerDay,
		DailyOutput:       req.DailyOutput,
		PanelWorkCapacity: req.PanelWorkCapacity,
		FixedProjectCost:  req.FixedProjectCost,
		ProfitPercent:     req.ProfitPercent,
	}
	d := s.defaults.EffectiveTiling(ctx, userID)

	return &dto.ComputeTilingResponse{
		Metrics: pricing.ComputeTilingMetrics(item, data, d),
	}, nil
}

func (s *pricingService) SummarizeTiling(req dto.TilingSummaryRequest) *dto.TilingSummaryResponse {
	lines := make([]pricing.TilingSummaryLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = pricing.TilingSummaryLine{
			Quantity:       l.Quantity,
			WorkDays:       l.WorkDays,
			MaterialCost:   l.MaterialCost,
			LaborCost:      l.LaborCost,
			ContractorCost: l.ContractorCost,
			Price:          l.Price,
			Profit:         l.Profit,
		}
	}
	return &dto.TilingSummaryResponse{
		Summary: pricing.SummarizeTiling(lines, req.Precise),
	}
}

func (s *pricingService) QuoteTotals(req dto.QuoteTotalsRequest) *dto.QuoteTotalsResponse {
	lines := make([]pricing.LineTotals, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = pricing.LineTotals{
			TotalCost:    l.TotalCost,
			TotalPrice:   l.TotalPrice,
			WorkDuration: l.WorkDuration,
		}
	}
	extras := make([]pricing.AdditionalCost, len(req.AdditionalCosts))
	for i, e := range req.AdditionalCosts {
		extras[i] = pricing.AdditionalCost{Cost: e.Cost, ContractorCost: e.ContractorCost}
	}
	return &dto.QuoteTotalsResponse{
		Totals: pricing.ComputeQuoteTotals(lines, extras, req.PriceIncreasePercent, req.DiscountPercent),
	}
}

func (s *pricingService) ComplexityOptions() *dto.ComplexityOptionsResponse {
	return &dto.ComplexityOptionsResponse{Options: pricing.TilingComplexityOptions}
}

func (s *pricingService) BuildLine(ctx context.Context, userID uuid.UUID, in dto.QuoteLineInput, at time.Time) pricing.LineItem {
	meta := pricing.LineMeta{
		CategoryID: in.CategoryKey,
		Source:     in.Source,
		Name:       in.Name,
		Unit:       in.Unit,
	}
	if in.Description != nil {
		meta.Description = *in.Description
	}
	if meta.Source == "" {
		meta.Source = pricing.SourceManual
	}

	cfg := pricing.ConfigFor(in.CategoryKey)
	if cfg.Model == pricing.TilingComposite {
		item := pricing.TilingItem{
			Quantity:             in.Quantity,
			PanelQuantity:        in.PanelQuantity,
			ComplexityMultiplier: in.ComplexityMultiplier,
		}
		if in.ManualPrice != nil {
			item.ManualPrice = *in.ManualPrice
			item.HasManualPrice = true
		}
		data := pricing.TilingItemData{
			MaterialCost:      in.MaterialCost,
			AdditionalCost:    in.AdditionalCost,
			WastagePercent:    in.WastagePercent,
			LaborCostPerDay:   in.LaborCostPerDay,
			DailyOutput:       in.DailyOutput,
			PanelWorkCapacity: in.PanelWorkCapacity,
			FixedProjectCost:  in.FixedProjectCost,
			ProfitPercent:     in.ProfitPercent,
		}
		m := pricing.ComputeTilingMetrics(item, data, s.defaults.EffectiveTiling(ctx, userID))
		line := pricing.AssembleTilingLine(meta, item, m, at)
		line.ComplexityLevel = in.ComplexityLevel
		line.SelectedSize = in.SelectedSize
		line.WorkType = in.WorkType
		return line
	}

	lineIn := pricing.LineInput{
		Quantity:              in.Quantity,
		ContractorCostPerUnit: in.ContractorCostPerUnit,
		HoursPerUnit:          in.HoursPerUnit,
		MaterialCostPerUnit:   in.MaterialCostPerUnit,
		ProfitPercent:         in.ProfitPercent,
		IgnoreQuantity:        in.IgnoreQuantity,
	}
	if in.ManualPrice != nil {
		lineIn.ManualPrice = *in.ManualPrice
		lineIn.HasManualPrice = true
	}
	res := pricing.ComputeLine(cfg, lineIn, s.defaults.Effective(ctx, userID, in.CategoryKey))
	return pricing.AssembleLine(meta, res, at)
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
