package service

import (
	"context"
	"errors"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"
	"quotecraft/internal/pricing"
	"quotecraft/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultsService interface {
	Get(ctx context.Context, userID uuid.UUID, categoryKey string) (*dto.DefaultsResponse, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]dto.DefaultsResponse, error)
	Upsert(ctx context.Context, userID uuid.UUID, categoryKey string, req dto.UpsertDefaultsRequest) (*dto.DefaultsResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, categoryKey string) error

	// Effective resolves the pricing-engine defaults for a computation:
	// the user's stored row when present, hardcoded fallbacks otherwise.
	Effective(ctx context.Context, userID uuid.UUID, categoryKey string) pricing.Defaults
	EffectiveTiling(ctx context.Context, userID uuid.UUID) pricing.TilingDefaults
}

type defaultsService struct {
	repo repository.DefaultsRepository
}

func NewDefaultsService(repo repository.DefaultsRepository) DefaultsService {
	return &defaultsService{repo: repo}
}

func (s *defaultsService) Get(ctx context.Context, userID uuid.UUID, categoryKey string) (*dto.DefaultsResponse, error) {
	d, err := s.repo.FindByUserAndCategory(ctx, userID, categoryKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("no defaults stored for category")
		}
		return nil, err
	}
	resp := defaultsToResponse(d)
	return &resp, nil
}

func (s *defaultsService) ListAll(ctx context.Context, userID uuid.UUID) ([]dto.DefaultsResponse, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DefaultsResponse, len(rows))
	for i := range rows {
		resp[i] = defaultsToResponse(&rows[i])
	}
	return resp, nil
}

func (s *defaultsService) Upsert(ctx context.Context, userID uuid.UUID, categoryKey string, req dto.UpsertDefaultsRequest) (*dto.DefaultsResponse, error) {
	d := &model.PricingDefaults{
		UserID:      userID,
		CategoryKey: categoryKey,

		ProfitPercent:   req.ProfitPercent,
		LaborCostPerDay: req.LaborCostPerDay,
		HoursPerDay:     req.HoursPerDay,

		WastagePercent:    req.WastagePercent,
		DailyOutput:       req.DailyOutput,
		PanelWorkCapacity: req.PanelWorkCapacity,
		AdditionalCost:    req.AdditionalCost,
		FixedProjectCost:  req.FixedProjectCost,
	}
	if err := s.repo.Upsert(ctx, d); err != nil {
		return nil, err
	}
	resp := defaultsToResponse(d)
	return &resp, nil
}

func (s *defaultsService) Delete(ctx context.Context, userID uuid.UUID, categoryKey string) error {
	return s.repo.Delete(ctx, userID, categoryKey)
}

func (s *defaultsService) Effective(ctx context.Context, userID uuid.UUID, categoryKey string) pricing.Defaults {
	d, err := s.repo.FindByUserAndCategory(ctx, userID, categoryKey)
	if err != nil {
		return pricing.Defaults{}
	}
	return pricing.Defaults{
		ProfitPercent:   toFloat(d.ProfitPercent),
		LaborCostPerDay: toFloat(d.LaborCostPerDay),
	}
}

func (s *defaultsService) EffectiveTiling(ctx context.Context, userID uuid.UUID) pricing.TilingDefaults {
	d, err := s.repo.FindByUserAndCategory(ctx, userID, "tiling")
	if err != nil {
		return pricing.TilingDefaults{}
	}
	return pricing.TilingDefaults{
		AdditionalCost:    toFloat(d.AdditionalCost),
		WastagePercent:    toFloat(d.WastagePercent),
		LaborCostPerDay:   toFloat(d.LaborCostPerDay),
		DailyOutput:       toFloat(d.DailyOutput),
		PanelWorkCapacity: toFloat(d.PanelWorkCapacity),
		FixedProjectCost:  toFloat(d.FixedProjectCost),
		ProfitPercent:     toFloat(d.ProfitPercent),
	}
}

func defaultsToResponse(d *model.PricingDefaults) dto.DefaultsResponse {
	return dto.DefaultsResponse{
		CategoryKey:     d.CategoryKey,
		ProfitPercent:   d.ProfitPercent,
		LaborCostPerDay: d.LaborCostPerDay,
		HoursPerDay:     d.HoursPerDay,

		WastagePercent:    d.WastagePercent,
		DailyOutput:       d.DailyOutput,
		PanelWorkCapacity: d.PanelWorkCapacity,
		AdditionalCost:    d.AdditionalCost,
		FixedProjectCost:  d.FixedProjectCost,
	}
}
