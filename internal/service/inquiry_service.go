package service

import (
	"context"
	"errors"

	"quotecraft/internal/config"
	"quotecraft/internal/dto"
	"quotecraft/internal/model"
	"quotecraft/internal/repository"
	"quotecraft/internal/worker"

	"github.com/google/uuid"
)

type InquiryService interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) (*dto.InquiryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.InquiryResponse, error)
	List(ctx context.Context, filter dto.InquiryFilter) (*dto.InquiryListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateInquiryRequest) (*dto.InquiryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type inquiryService struct {
	repo       repository.InquiryRepository
	dispatcher *worker.Dispatcher
	cfg        *config.Config
}

func NewInquiryService(repo repository.InquiryRepository, dispatcher *worker.Dispatcher, cfg *config.Config) InquiryService {
	return &inquiryService{repo: repo, dispatcher: dispatcher, cfg: cfg}
}

func (s *inquiryService) Create(ctx context.Context, req dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	in := &model.CustomerInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  model.InquiryStatusNew,
	}
	if err := s.repo.Create(ctx, in); err != nil {
		return nil, err
	}

	// Notify back-office — best-effort, fire & forget
	if s.dispatcher != nil && s.cfg != nil && s.cfg.InquiryNotifyEmail != "" {
		_ = s.dispatcher.EnqueueNotify(ctx, worker.NotifyJobPayload{
			ToEmail: s.cfg.InquiryNotifyEmail,
			Subject: "New inquiry: " + in.Subject,
			Body:    "From: " + in.Name + " <" + in.Email + ">\n\n" + in.Message,
		})
	}

	resp := inquiryToResponse(in)
	return &resp, nil
}

func (s *inquiryService) GetByID(ctx context.Context, id uuid.UUID) (*dto.InquiryResponse, error) {
	in, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("inquiry not found")
	}
	resp := inquiryToResponse(in)
	return &resp, nil
}

func (s *inquiryService) List(ctx context.Context, filter dto.InquiryFilter) (*dto.InquiryListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	inquiries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.InquiryResponse, len(inquiries))
	for i := range inquiries {
		data[i] = inquiryToResponse(&inquiries[i])
	}
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &dto.InquiryListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *inquiryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateInquiryRequest) (*dto.InquiryResponse, error) {
	in, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("inquiry not found")
	}
	if req.Status != nil {
		in.Status = *req.Status
	}
	if req.Notes != nil {
		in.Notes = req.Notes
	}
	if err := s.repo.Update(ctx, in); err != nil {
		return nil, err
	}
	resp := inquiryToResponse(in)
	return &resp, nil
}

func (s *inquiryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("inquiry not found")
	}
	return s.repo.Delete(ctx, id)
}

func inquiryToResponse(in *model.CustomerInquiry) dto.InquiryResponse {
	return dto.InquiryResponse{
		ID:        in.ID.String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    in.Status,
		Notes:     in.Notes,
		CreatedAt: in.CreatedAt,
	}
}
