package repository

import (
	"context"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryRepository interface {
	Create(ctx context.Context, in *model.CustomerInquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CustomerInquiry, error)
	List(ctx context.Context, filter dto.InquiryFilter) ([]model.CustomerInquiry, int64, error)
	Update(ctx context.Context, in *model.CustomerInquiry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type inquiryRepo struct{ db *gorm.DB }

func NewInquiryRepository(db *gorm.DB) InquiryRepository { return &inquiryRepo{db: db} }

func (r *inquiryRepo) Create(ctx context.Context, in *model.CustomerInquiry) error {
	return r.db.WithContext(ctx).Create(in).Error
}

func (r *inquiryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CustomerInquiry, error) {
	var in model.CustomerInquiry
	err := r.db.WithContext(ctx).First(&in, id).Error
	return &in, err
}

func (r *inquiryRepo) List(ctx context.Context, filter dto.InquiryFilter) ([]model.CustomerInquiry, int64, error) {
	var inquiries []model.CustomerInquiry
	var total int64

	q := r.db.WithContext(ctx).Model(&model.CustomerInquiry{})
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&inquiries).Error
	return inquiries, total, err
}

func (r *inquiryRepo) Update(ctx context.Context, in *model.CustomerInquiry) error {
	return r.db.WithContext(ctx).Save(in).Error
}

func (r *inquiryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CustomerInquiry{}, id).Error
}
