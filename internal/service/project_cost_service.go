package service

import (
	"context"
	"errors"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"
	"quotecraft/internal/repository"

	"github.com/google/uuid"
)

type ProjectCostService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateProjectCostRequest) (*dto.ProjectCostResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter dto.ProjectCostFilter) (*dto.ProjectCostListResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateProjectCostRequest) (*dto.ProjectCostResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type projectCostService struct {
	repo repository.ProjectCostRepository
}

func NewProjectCostService(repo repository.ProjectCostRepository) ProjectCostService {
	return &projectCostService{repo: repo}
}

func (s *projectCostService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateProjectCostRequest) (*dto.ProjectCostResponse, error) {
	pc := &model.ProjectCost{
		UserID:         userID,
		Name:           req.Name,
		Cost:           req.Cost,
		ContractorCost: req.ContractorCost,
		Notes:          req.Notes,
	}
	if req.QuoteID != nil {
		qid, err := uuid.Parse(*req.QuoteID)
		if err != nil {
			return nil, errors.New("invalid quote_id")
		}
		pc.QuoteID = &qid
	}
	if err := s.repo.Create(ctx, pc); err != nil {
		return nil, err
	}
	resp := projectCostToResponse(pc)
	return &resp, nil
}

func (s *projectCostService) List(ctx context.Context, userID uuid.UUID, filter dto.ProjectCostFilter) (*dto.ProjectCostListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	costs, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProjectCostResponse, len(costs))
	for i := range costs {
		data[i] = projectCostToResponse(&costs[i])
	}
	return &dto.ProjectCostListResponse{Data: data, Total: total}, nil
}

func (s *projectCostService) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateProjectCostRequest) (*dto.ProjectCostResponse, error) {
	pc, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		pc.Name = *req.Name
	}
	if req.Cost != nil {
		pc.Cost = *req.Cost
	}
	if req.ContractorCost != nil {
		pc.ContractorCost = *req.ContractorCost
	}
	if req.Notes != nil {
		pc.Notes = req.Notes
	}
	if err := s.repo.Update(ctx, pc); err != nil {
		return nil, err
	}
	resp := projectCostToResponse(pc)
	return &resp, nil
}

func (s *projectCostService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *projectCostService) findOwned(ctx context.Context, userID, id uuid.UUID) (*model.ProjectCost, error) {
	pc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("project cost not found")
	}
	if pc.UserID != userID {
		return nil, errors.New("project cost not found")
	}
	return pc, nil
}

func projectCostToResponse(pc *model.ProjectCost) dto.ProjectCostResponse {
	var quoteID *string
	if pc.QuoteID != nil {
		s := pc.QuoteID.String()
		quoteID = &s
	}
	return dto.ProjectCostResponse{
		ID:             pc.ID.String(),
		QuoteID:        quoteID,
		Name:           pc.Name,
		Cost:           pc.Cost,
		ContractorCost: pc.ContractorCost,
		Notes:          pc.Notes,
		CreatedAt:      pc.CreatedAt,
	}
}
