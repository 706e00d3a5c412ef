package service

import (
	"context"
	"errors"
	"time"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"
	"quotecraft/internal/repository"

	"github.com/google/uuid"
)

type TemplateService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateTemplateRequest) (*dto.TemplateResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.TemplateResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]dto.TemplateResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateTemplateRequest) (*dto.TemplateResponse, error)
	Deactivate(ctx context.Context, userID, id uuid.UUID) error
}

type templateService struct {
	repo    repository.TemplateRepository
	pricing PricingService
}

func NewTemplateService(repo repository.TemplateRepository, pricingSvc PricingService) TemplateService {
	return &templateService{repo: repo, pricing: pricingSvc}
}

func (s *templateService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	tpl := &model.QuoteTemplate{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Items:       s.buildLines(ctx, userID, req.Items),
		Active:      true,
	}
	if err := s.repo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	resp := templateToResponse(tpl)
	return &resp, nil
}

func (s *templateService) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.TemplateResponse, error) {
	tpl, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := templateToResponse(tpl)
	return &resp, nil
}

func (s *templateService) List(ctx context.Context, userID uuid.UUID) ([]dto.TemplateResponse, error) {
	templates, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TemplateResponse, len(templates))
	for i := range templates {
		resp[i] = templateToResponse(&templates[i])
	}
	return resp, nil
}

func (s *templateService) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	tpl, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		tpl.Name = *req.Name
	}
	if req.Description != nil {
		tpl.Description = req.Description
	}
	if req.Items != nil {
		tpl.Items = s.buildLines(ctx, userID, *req.Items)
	}
	if req.Active != nil {
		tpl.Active = *req.Active
	}
	if err := s.repo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	resp := templateToResponse(tpl)
	return &resp, nil
}

func (s *templateService) Deactivate(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *templateService) findOwned(ctx context.Context, userID, id uuid.UUID) (*model.QuoteTemplate, error) {
	tpl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("template not found")
	}
	if tpl.UserID != userID {
		return nil, errors.New("template not found")
	}
	return tpl, nil
}

func (s *templateService) buildLines(ctx context.Context, userID uuid.UUID, inputs []dto.QuoteLineInput) model.LineItems {
	now := time.Now()
	items := make(model.LineItems, len(inputs))
	for i, in := range inputs {
		items[i] = s.pricing.BuildLine(ctx, userID, in, now.Add(time.Duration(i)*time.Millisecond))
	}
	return items
}

func templateToResponse(t *model.QuoteTemplate) dto.TemplateResponse {
	return dto.TemplateResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		Items:       t.Items,
		Active:      t.Active,
		CreatedAt:   t.CreatedAt,
	}
}
