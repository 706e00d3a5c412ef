package service

import (
	"context"
	"errors"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"
	"quotecraft/internal/pricing"
	"quotecraft/internal/repository"

	"github.com/google/uuid"
)

type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.CategoryResponse, error)
	GetByKey(ctx context.Context, key string) (*dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if _, err := s.repo.FindByKey(ctx, req.Key); err == nil {
		return nil, errors.New("category key already exists")
	}
	cat := &model.Category{
		Key:         req.Key,
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		Active:      true,
	}
	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	resp := categoryToResponse(cat)
	return &resp, nil
}

func (s *categoryService) List(ctx context.Context, includeInactive bool) ([]dto.CategoryResponse, error) {
	cats, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoryResponse, len(cats))
	for i := range cats {
		resp[i] = categoryToResponse(&cats[i])
	}
	return resp, nil
}

func (s *categoryService) GetByKey(ctx context.Context, key string) (*dto.CategoryResponse, error) {
	cat, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, errors.New("category not found")
	}
	resp := categoryToResponse(cat)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("category not found")
	}
	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Description != nil {
		cat.Description = req.Description
	}
	if req.SortOrder != nil {
		cat.SortOrder = *req.SortOrder
	}
	if req.Active != nil {
		cat.Active = *req.Active
	}
	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	resp := categoryToResponse(cat)
	return &resp, nil
}

func (s *categoryService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func categoryToResponse(c *model.Category) dto.CategoryResponse {
	modelName := "direct_cost"
	cfg := pricing.ConfigFor(c.Key)
	switch cfg.Model {
	case pricing.HoursBased:
		modelName = "hours_based"
	case pricing.MaterialPlusHours:
		modelName = "material_plus_hours"
	case pricing.TilingComposite:
		modelName = "tiling"
	}
	return dto.CategoryResponse{
		ID:             c.ID.String(),
		Key:            c.Key,
		Name:           c.Name,
		Description:    c.Description,
		SortOrder:      c.SortOrder,
		Active:         c.Active,
		CostModel:      modelName,
		IgnoreQuantity: cfg.IgnoreQuantity,
		RequireName:    cfg.RequireName,
	}
}
