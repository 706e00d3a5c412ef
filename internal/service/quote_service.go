package service

import (
	"context"
	"errors"
	"time"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"
	"quotecraft/internal/pricing"
	"quotecraft/internal/repository"
	"quotecraft/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error)
	CreateFromTemplate(ctx context.Context, userID, templateID uuid.UUID) (*dto.QuoteResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.QuoteResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter dto.QuoteFilter) (*dto.QuoteListResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateQuoteRequest) (*dto.QuoteResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Send(ctx context.Context, userID, id uuid.UUID, req dto.SendQuoteRequest) (*dto.QuoteResponse, error)
}

type quoteService struct {
	repo         repository.QuoteRepository
	templateRepo repository.TemplateRepository
	pricing      PricingService
	dispatcher   *worker.Dispatcher
}

func NewQuoteService(
	repo repository.QuoteRepository,
	templateRepo repository.TemplateRepository,
	pricingSvc PricingService,
	dispatcher *worker.Dispatcher,
) QuoteService {
	return &quoteService{
		repo:         repo,
		templateRepo: templateRepo,
		pricing:      pricingSvc,
		dispatcher:   dispatcher,
	}
}

func (s *quoteService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	number, err := s.repo.NextQuoteNumber(ctx)
	if err != nil {
		return nil, err
	}

	q := &model.Quote{
		UserID:      userID,
		QuoteNumber: number,
		Status:      model.QuoteStatusDraft,

		Title:          req.Title,
		ProjectName:    req.ProjectName,
		ProjectAddress: req.ProjectAddress,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,

		Items:           s.buildLines(ctx, userID, req.Items),
		AdditionalCosts: toModelExtras(req.AdditionalCosts),
		PaymentTerms:    toModelTerms(req.PaymentTerms),

		DiscountPercent:      decimal.NewFromFloat(req.DiscountPercent),
		PriceIncreasePercent: decimal.NewFromFloat(req.PriceIncreasePercent),

		Notes:      req.Notes,
		ValidUntil: req.ValidUntil,
	}
	s.recomputeTotals(q)

	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	resp := quoteToResponse(q)
	return &resp, nil
}

func (s *quoteService) CreateFromTemplate(ctx context.Context, userID, templateID uuid.UUID) (*dto.QuoteResponse, error) {
	tpl, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil || tpl.UserID != userID {
		return nil, errors.New("template not found")
	}

	number, err := s.repo.NextQuoteNumber(ctx)
	if err != nil {
		return nil, err
	}

	// Template rows were computed when the template was saved; re-stamp
	// their ids so two quotes never share row ids.
	now := time.Now()
	items := make(model.LineItems, len(tpl.Items))
	for i, li := range tpl.Items {
		li.ID = pricing.LineID(li.CategoryID, now.Add(time.Duration(i)*time.Millisecond))
		items[i] = li
	}

	q := &model.Quote{
		UserID:      userID,
		QuoteNumber: number,
		Status:      model.QuoteStatusDraft,
		Title:       &tpl.Name,
		Items:       items,
	}
	s.recomputeTotals(q)

	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	resp := quoteToResponse(q)
	return &resp, nil
}

func (s *quoteService) GetByID(ctx context.Context, userID, id uuid.UUID) (*dto.QuoteResponse, error) {
	q, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := quoteToResponse(q)
	return &resp, nil
}

func (s *quoteService) List(ctx context.Context, userID uuid.UUID, filter dto.QuoteFilter) (*dto.QuoteListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	quotes, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.QuoteResponse, len(quotes))
	for i := range quotes {
		data[i] = quoteToResponse(&quotes[i])
	}
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &dto.QuoteListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *quoteService) Update(ctx context.Context, userID, id uuid.UUID, req dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	q, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		q.Title = req.Title
	}
	if req.ProjectName != nil {
		q.ProjectName = req.ProjectName
	}
	if req.ProjectAddress != nil {
		q.ProjectAddress = req.ProjectAddress
	}
	if req.ClientName != nil {
		q.ClientName = req.ClientName
	}
	if req.ClientEmail != nil {
		q.ClientEmail = req.ClientEmail
	}
	if req.ClientPhone != nil {
		q.ClientPhone = req.ClientPhone
	}
	if req.Notes != nil {
		q.Notes = req.Notes
	}
	if req.ValidUntil != nil {
		q.ValidUntil = req.ValidUntil
	}

	recompute := false
	if req.Items != nil {
		q.Items = s.buildLines(ctx, userID, *req.Items)
		recompute = true
	}
	if req.AdditionalCosts != nil {
		q.AdditionalCosts = toModelExtras(*req.AdditionalCosts)
		recompute = true
	}
	if req.PaymentTerms != nil {
		q.PaymentTerms = toModelTerms(*req.PaymentTerms)
	}
	if req.DiscountPercent != nil {
		q.DiscountPercent = decimal.NewFromFloat(*req.DiscountPercent)
		recompute = true
	}
	if req.PriceIncreasePercent != nil {
		q.PriceIncreasePercent = decimal.NewFromFloat(*req.PriceIncreasePercent)
		recompute = true
	}
	if recompute {
		s.recomputeTotals(q)
	}

	if req.Status != nil && *req.Status != q.Status {
		if err := applyStatusTransition(q, *req.Status); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	resp := quoteToResponse(q)
	return &resp, nil
}

func (s *quoteService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	if q.Status != model.QuoteStatusDraft {
		return errors.New("only draft quotes can be deleted")
	}
	return s.repo.Delete(ctx, id)
}

func (s *quoteService) Send(ctx context.Context, userID, id uuid.UUID, req dto.SendQuoteRequest) (*dto.QuoteResponse, error) {
	q, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	email := ""
	if q.ClientEmail != nil {
		email = *q.ClientEmail
	}
	if req.Email != nil && *req.Email != "" {
		email = *req.Email
	}
	if email == "" {
		return nil, errors.New("quote has no client email")
	}

	now := time.Now()
	q.Status = model.QuoteStatusSent
	q.SentAt = &now
	if err := s.repo.Update(ctx, q); err != nil {
		return nil, err
	}

	// Async PDF + email — best-effort, fire & forget
	if s.dispatcher != nil {
		payload := worker.QuoteEmailJobPayload{
			QuoteID: q.ID.String(),
			ToEmail: email,
		}
		if req.Message != nil {
			payload.Message = *req.Message
		}
		_ = s.dispatcher.EnqueueQuoteEmail(ctx, payload)
	}

	resp := quoteToResponse(q)
	return &resp, nil
}

func (s *quoteService) findOwned(ctx context.Context, userID, id uuid.UUID) (*model.Quote, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("quote not found")
	}
	if q.UserID != userID {
		return nil, errors.New("quote not found")
	}
	return q, nil
}

// buildLines runs every raw row through the pricing engine. Timestamps are
// staggered per row so the category-prefixed line ids stay unique.
func (s *quoteService) buildLines(ctx context.Context, userID uuid.UUID, inputs []dto.QuoteLineInput) model.LineItems {
	now := time.Now()
	items := make(model.LineItems, len(inputs))
	for i, in := range inputs {
		items[i] = s.pricing.BuildLine(ctx, userID, in, now.Add(time.Duration(i)*time.Millisecond))
	}
	return items
}

func (s *quoteService) recomputeTotals(q *model.Quote) {
	lines := make([]pricing.LineTotals, len(q.Items))
	for i, li := range q.Items {
		lines[i] = li.Totals()
	}
	extras := make([]pricing.AdditionalCost, len(q.AdditionalCosts))
	for i, e := range q.AdditionalCosts {
		extras[i] = pricing.AdditionalCost{Cost: e.Cost, ContractorCost: e.ContractorCost}
	}

	totals := pricing.ComputeQuoteTotals(lines, extras, toFloat(q.PriceIncreasePercent), toFloat(q.DiscountPercent))

	q.TotalCost = decimal.NewFromFloat(totals.TotalCost)
	q.TotalPrice = decimal.NewFromFloat(totals.TotalPrice)
	q.ProfitAmount = decimal.NewFromFloat(totals.Profit)
	q.ProfitPercent = decimal.NewFromFloat(totals.ProfitPercent)
	q.WorkDays = decimal.NewFromFloat(totals.TotalWorkDays)
}

// applyStatusTransition enforces the quote lifecycle:
// draft → sent → approved/rejected; sent quotes expire via the cron.
func applyStatusTransition(q *model.Quote, next string) error {
	now := time.Now()
	switch next {
	case model.QuoteStatusSent:
		if q.Status != model.QuoteStatusDraft {
			return errors.New("only draft quotes can be marked sent")
		}
		q.SentAt = &now
	case model.QuoteStatusApproved:
		if q.Status != model.QuoteStatusSent {
			return errors.New("only sent quotes can be approved")
		}
		q.ApprovedAt = &now
	case model.QuoteStatusRejected:
		if q.Status != model.QuoteStatusSent {
			return errors.New("only sent quotes can be rejected")
		}
	case model.QuoteStatusDraft:
		if q.Status != model.QuoteStatusSent {
			return errors.New("only sent quotes can go back to draft")
		}
		q.SentAt = nil
	default:
		return errors.New("invalid status transition")
	}
	q.Status = next
	return nil
}

func toModelExtras(in []dto.AdditionalCostInput) model.AdditionalCosts {
	out := make(model.AdditionalCosts, len(in))
	for i, e := range in {
		out[i] = model.QuoteAdditionalCost{Name: e.Name, Cost: e.Cost, ContractorCost: e.ContractorCost}
	}
	return out
}

func toModelTerms(in []dto.PaymentTermInput) model.PaymentTerms {
	out := make(model.PaymentTerms, len(in))
	for i, t := range in {
		out[i] = model.PaymentTerm{Label: t.Label, Percent: t.Percent, DueOn: t.DueOn}
	}
	return out
}

func quoteToResponse(q *model.Quote) dto.QuoteResponse {
	extras := make([]dto.AdditionalCostInput, len(q.AdditionalCosts))
	for i, e := range q.AdditionalCosts {
		extras[i] = dto.AdditionalCostInput{Name: e.Name, Cost: e.Cost, ContractorCost: e.ContractorCost}
	}
	terms := make([]dto.PaymentTermInput, len(q.PaymentTerms))
	for i, t := range q.PaymentTerms {
		terms[i] = dto.PaymentTermInput{Label: t.Label, Percent: t.Percent, DueOn: t.DueOn}
	}
	return dto.QuoteResponse{
		ID:          q.ID.String(),
		QuoteNumber: q.QuoteNumber,
		Status:      q.Status,

		Title:          q.Title,
		ProjectName:    q.ProjectName,
		ProjectAddress: q.ProjectAddress,
		ClientName:     q.ClientName,
		ClientEmail:    q.ClientEmail,
		ClientPhone:    q.ClientPhone,

		Items:           q.Items,
		AdditionalCosts: extras,
		PaymentTerms:    terms,

		DiscountPercent:      q.DiscountPercent,
		PriceIncreasePercent: q.PriceIncreasePercent,
		TotalCost:            q.TotalCost,
		TotalPrice:           q.TotalPrice,
		ProfitAmount:         q.ProfitAmount,
		ProfitPercent:        q.ProfitPercent,
		WorkDays:             q.WorkDays,

		Notes:      q.Notes,
		ValidUntil: q.ValidUntil,
		SentAt:     q.SentAt,
		ApprovedAt: q.ApprovedAt,
		CreatedAt:  q.CreatedAt,
	}
}
