package repository

import (
	"context"
	"fmt"
	"time"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuoteRepository interface {
	Create(ctx context.Context, q *model.Quote) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Quote, error)
	List(ctx context.Context, userID uuid.UUID, filter dto.QuoteFilter) ([]model.Quote, int64, error)
	Update(ctx context.Context, q *model.Quote) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	NextQuoteNumber(ctx context.Context) (string, error)
	MarkExpired(ctx context.Context, now time.Time) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type quoteRepo struct{ db *gorm.DB }

func NewQuoteRepository(db *gorm.DB) QuoteRepository { return &quoteRepo{db: db} }

func (r *quoteRepo) DB() *gorm.DB { return r.db }

func (r *quoteRepo) Create(ctx context.Context, q *model.Quote) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *quoteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	var q model.Quote
	err := r.db.WithContext(ctx).First(&q, id).Error
	return &q, err
}

func (r *quoteRepo) List(ctx context.Context, userID uuid.UUID, filter dto.QuoteFilter) ([]model.Quote, int64, error) {
	var quotes []model.Quote
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Quote{}).Where("user_id = ?", userID)

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ClientName != "" {
		q = q.Where("client_name ILIKE ?", "%"+filter.ClientName+"%")
	}
	if filter.Project != "" {
		q = q.Where("project_name ILIKE ?", "%"+filter.Project+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&quotes).Error
	return quotes, total, err
}

func (r *quoteRepo) Update(ctx context.Context, q *model.Quote) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *quoteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Quote{}).Where("id = ?", id).Update("status", status).Error
}

func (r *quoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Quote{}, id).Error
}

func (r *quoteRepo) NextQuoteNumber(ctx context.Context) (string, error) {
	// Uses a PostgreSQL sequence for atomic numbering; formatted as Q-2025-000123.
	var num int
	err := r.db.WithContext(ctx).Raw("SELECT nextval('quotes_number_seq')").Scan(&num).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Q-%d-%06d", time.Now().Year(), num), nil
}

func (r *quoteRepo) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Quote{}).
		Where("status = ? AND valid_until IS NOT NULL AND valid_until < ?", model.QuoteStatusSent, now).
		Update("status", model.QuoteStatusExpired)
	return res.RowsAffected, res.Error
}
