package repository

import (
	"context"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectCostRepository interface {
	Create(ctx context.Context, pc *model.ProjectCost) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProjectCost, error)
	List(ctx context.Context, userID uuid.UUID, filter dto.ProjectCostFilter) ([]model.ProjectCost, int64, error)
	Update(ctx context.Context, pc *model.ProjectCost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectCostRepo struct{ db *gorm.DB }

func NewProjectCostRepository(db *gorm.DB) ProjectCostRepository { return &projectCostRepo{db: db} }

func (r *projectCostRepo) Create(ctx context.Context, pc *model.ProjectCost) error {
	return r.db.WithContext(ctx).Create(pc).Error
}

func (r *projectCostRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ProjectCost, error) {
	var pc model.ProjectCost
	err := r.db.WithContext(ctx).First(&pc, id).Error
	return &pc, err
}

func (r *projectCostRepo) List(ctx context.Context, userID uuid.UUID, filter dto.ProjectCostFilter) ([]model.ProjectCost, int64, error) {
	var costs []model.ProjectCost
	var total int64

	q := r.db.WithContext(ctx).Model(&model.ProjectCost{}).Where("user_id = ?", userID)
	if filter.QuoteID != "" {
		q = q.Where("quote_id = ?", filter.QuoteID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&costs).Error
	return costs, total, err
}

func (r *projectCostRepo) Update(ctx context.Context, pc *model.ProjectCost) error {
	return r.db.WithContext(ctx).Save(pc).Error
}

func (r *projectCostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProjectCost{}, id).Error
}
