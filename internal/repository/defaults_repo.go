package repository

import (
	"context"
	"errors"

	"quotecraft/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultsRepository interface {
	FindByUserAndCategory(ctx context.Context, userID uuid.UUID, categoryKey string) (*model.PricingDefaults, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.PricingDefaults, error)
	Upsert(ctx context.Context, d *model.PricingDefaults) error
	Delete(ctx context.Context, userID uuid.UUID, categoryKey string) error
}

type defaultsRepo struct{ db *gorm.DB }

func NewDefaultsRepository(db *gorm.DB) DefaultsRepository { return &defaultsRepo{db: db} }

func (r *defaultsRepo) FindByUserAndCategory(ctx context.Context, userID uuid.UUID, categoryKey string) (*model.PricingDefaults, error) {
	var d model.PricingDefaults
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category_key = ?", userID, categoryKey).
		First(&d).Error
	return &d, err
}

func (r *defaultsRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.PricingDefaults, error) {
	var out []model.PricingDefaults
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category_key ASC").
		Find(&out).Error
	return out, err
}

func (r *defaultsRepo) Upsert(ctx context.Context, d *model.PricingDefaults) error {
	// ON CONFLICT (user_id, category_key) DO UPDATE — one row per user+category.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "category_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"profit_percent", "labor_cost_per_day", "hours_per_day",
			"wastage_percent", "daily_output", "panel_work_capacity",
			"additional_cost", "fixed_project_cost", "updated_at",
		}),
	}).Create(d).Error
}

func (r *defaultsRepo) Delete(ctx context.Context, userID uuid.UUID, categoryKey string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND category_key = ?", userID, categoryKey).
		Delete(&model.PricingDefaults{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("pricing defaults not found")
	}
	return nil
}
