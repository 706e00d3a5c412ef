package repository

import (
	"context"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository defines the data access contract for catalog items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks.
type CatalogRepository interface {
	Create(ctx context.Context, it *model.CatalogItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error)
	List(ctx context.Context, userID uuid.UUID, filter dto.CatalogItemFilter) ([]model.CatalogItem, int64, error)
	ListByCategory(ctx context.Context, userID uuid.UUID, categoryKey string) ([]model.CatalogItem, error)
	Update(ctx context.Context, it *model.CatalogItem) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) CatalogRepository { return &catalogRepo{db: db} }

func (r *catalogRepo) Create(ctx context.Context, it *model.CatalogItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *catalogRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	var it model.CatalogItem
	err := r.db.WithContext(ctx).First(&it, id).Error
	return &it, err
}

func (r *catalogRepo) List(ctx context.Context, userID uuid.UUID, filter dto.CatalogItemFilter) ([]model.CatalogItem, int64, error) {
	var items []model.CatalogItem
	var total int64

	q := r.db.WithContext(ctx).Model(&model.CatalogItem{}).
		Where("user_id = ? AND active = true", userID)

	if filter.CategoryKey != "" {
		q = q.Where("category_key = ?", filter.CategoryKey)
	}
	if filter.SubCategory != "" {
		q = q.Where("sub_category = ?", filter.SubCategory)
	}
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *catalogRepo) ListByCategory(ctx context.Context, userID uuid.UUID, categoryKey string) ([]model.CatalogItem, error) {
	var items []model.CatalogItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category_key = ? AND active = true", userID, categoryKey).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *catalogRepo) Update(ctx context.Context, it *model.CatalogItem) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *catalogRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.CatalogItem{}).Where("id = ?", id).Update("active", false).Error
}

func (r *catalogRepo) Reactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.CatalogItem{}).Where("id = ?", id).Update("active", true).Error
}
