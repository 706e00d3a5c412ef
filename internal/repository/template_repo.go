package repository

import (
	"context"

	"quotecraft/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TemplateRepository interface {
	Create(ctx context.Context, t *model.QuoteTemplate) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.QuoteTemplate, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.QuoteTemplate, error)
	Update(ctx context.Context, t *model.QuoteTemplate) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type templateRepo struct{ db *gorm.DB }

func NewTemplateRepository(db *gorm.DB) TemplateRepository { return &templateRepo{db: db} }

func (r *templateRepo) Create(ctx context.Context, t *model.QuoteTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *templateRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.QuoteTemplate, error) {
	var t model.QuoteTemplate
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *templateRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.QuoteTemplate, error) {
	var templates []model.QuoteTemplate
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND active = true", userID).
		Order("name ASC").
		Find(&templates).Error
	return templates, err
}

func (r *templateRepo) Update(ctx context.Context, t *model.QuoteTemplate) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *templateRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.QuoteTemplate{}).Where("id = ?", id).Update("active", false).Error
}
