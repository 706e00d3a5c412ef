package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"
	"quotecraft/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// Catalog browse lists are hot during quote editing, so per-category lists
// are cached in Redis and invalidated on any write to that category.
const catalogCacheTTL = 30 * time.Minute

type CatalogService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.CatalogItemResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter dto.CatalogItemFilter) (*dto.CatalogItemListResponse, error)
	ListByCategory(ctx context.Context, userID uuid.UUID, categoryKey string) ([]dto.CatalogItemResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error)
	Deactivate(ctx context.Context, userID, id uuid.UUID) error
	Reactivate(ctx context.Context, userID, id uuid.UUID) error
}

type catalogService struct {
	repo repository.CatalogRepository
	rdb  *redis.Client
}

func NewCatalogService(repo repository.CatalogRepository, rdb *redis.Client) CatalogService {
	return &catalogService{repo: repo, rdb: rdb}
}

func catalogCacheKey(userID uuid.UUID, categoryKey string) string {
	return "catalog:" + userID.String() + ":" + categoryKey
}

func (s *catalogService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	item := &model.CatalogItem{
		UserID:      userID,
		CategoryKey: req.CategoryKey,
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
		SubCategory: req.SubCategory,

		ContractorCostPerUnit: req.ContractorCostPerUnit,
		ClientPricePerUnit:    req.ClientPricePerUnit,
		MaterialCostPerUnit:   req.MaterialCostPerUnit,
		HoursPerUnit:          req.HoursPerUnit,
		DesiredProfitPercent:  req.DesiredProfitPercent,

		LaborCostPerDay: req.LaborCostPerDay,
		DailyOutput:     req.DailyOutput,
		WastagePercent:  req.WastagePercent,
		AdditionalCost:  req.AdditionalCost,

		IgnoreQuantity: req.IgnoreQuantity,
		Active:         true,
	}
	if item.Unit == "" {
		item.Unit = "unit"
	}
	if item.SubCategory == "" {
		item.SubCategory = "general"
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID, item.CategoryKey)
	resp := catalogItemToResponse(item)
	return &resp, nil
}

func (s *catalogService) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.CatalogItemResponse, error) {
	item, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := catalogItemToResponse(item)
	return &resp, nil
}

func (s *catalogService) List(ctx context.Context, userID uuid.UUID, filter dto.CatalogItemFilter) (*dto.CatalogItemListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	items, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CatalogItemResponse, len(items))
	for i := range items {
		data[i] = catalogItemToResponse(&items[i])
	}
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &dto.CatalogItemListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *catalogService) ListByCategory(ctx context.Context, userID uuid.UUID, categoryKey string) ([]dto.CatalogItemResponse, error) {
	cacheKey := catalogCacheKey(userID, categoryKey)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp []dto.CatalogItemResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return resp, nil
			}
		}
	}

	items, err := s.repo.ListByCategory(ctx, userID, categoryKey)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CatalogItemResponse, len(items))
	for i := range items {
		resp[i] = catalogItemToResponse(&items[i])
	}

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), cacheKey, b, catalogCacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *catalogService) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	item, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.SubCategory != nil {
		item.SubCategory = *req.SubCategory
	}
	applyDecimal := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	applyDecimal(&item.ContractorCostPerUnit, req.ContractorCostPerUnit)
	applyDecimal(&item.ClientPricePerUnit, req.ClientPricePerUnit)
	applyDecimal(&item.MaterialCostPerUnit, req.MaterialCostPerUnit)
	applyDecimal(&item.HoursPerUnit, req.HoursPerUnit)
	applyDecimal(&item.DesiredProfitPercent, req.DesiredProfitPercent)
	applyDecimal(&item.LaborCostPerDay, req.LaborCostPerDay)
	applyDecimal(&item.DailyOutput, req.DailyOutput)
	applyDecimal(&item.WastagePercent, req.WastagePercent)
	applyDecimal(&item.AdditionalCost, req.AdditionalCost)
	if req.IgnoreQuantity != nil {
		item.IgnoreQuantity = *req.IgnoreQuantity
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID, item.CategoryKey)
	resp := catalogItemToResponse(item)
	return &resp, nil
}

func (s *catalogService) Deactivate(ctx context.Context, userID, id uuid.UUID) error {
	item, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID, item.CategoryKey)
	return nil
}

func (s *catalogService) Reactivate(ctx context.Context, userID, id uuid.UUID) error {
	item, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Reactivate(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID, item.CategoryKey)
	return nil
}

func (s *catalogService) findOwned(ctx context.Context, userID, id uuid.UUID) (*model.CatalogItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("catalog item not found")
	}
	if item.UserID != userID {
		return nil, errors.New("catalog item not found")
	}
	return item, nil
}

func (s *catalogService) invalidate(ctx context.Context, userID uuid.UUID, categoryKey string) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, catalogCacheKey(userID, categoryKey)).Err()
}

func catalogItemToResponse(it *model.CatalogItem) dto.CatalogItemResponse {
	return dto.CatalogItemResponse{
		ID:          it.ID.String(),
		CategoryKey: it.CategoryKey,
		Name:        it.Name,
		Description: it.Description,
		Unit:        it.Unit,
		SubCategory: it.SubCategory,

		ContractorCostPerUnit: it.ContractorCostPerUnit,
		ClientPricePerUnit:    it.ClientPricePerUnit,
		MaterialCostPerUnit:   it.MaterialCostPerUnit,
		HoursPerUnit:          it.HoursPerUnit,
		DesiredProfitPercent:  it.DesiredProfitPercent,

		LaborCostPerDay: it.LaborCostPerDay,
		DailyOutput:     it.DailyOutput,
		WastagePercent:  it.WastagePercent,
		AdditionalCost:  it.AdditionalCost,

		IgnoreQuantity: it.IgnoreQuantity,
		Active:         it.Active,
	}
}
