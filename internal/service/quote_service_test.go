package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"
	"quotecraft/internal/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubQuoteRepo struct {
	quotes map[uuid.UUID]*model.Quote
	seq    int
}

func newStubQuoteRepo() *stubQuoteRepo {
	return &stubQuoteRepo{quotes: make(map[uuid.UUID]*model.Quote)}
}

func (r *stubQuoteRepo) Create(_ context.Context, q *model.Quote) error {
	q.ID = uuid.New()
	r.quotes[q.ID] = q
	return nil
}

func (r *stubQuoteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (r *stubQuoteRepo) List(_ context.Context, userID uuid.UUID, _ dto.QuoteFilter) ([]model.Quote, int64, error) {
	var out []model.Quote
	for _, q := range r.quotes {
		if q.UserID == userID {
			out = append(out, *q)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubQuoteRepo) Update(_ context.Context, q *model.Quote) error {
	r.quotes[q.ID] = q
	return nil
}

func (r *stubQuoteRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	q, ok := r.quotes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	q.Status = status
	return nil
}

func (r *stubQuoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.quotes, id)
	return nil
}

func (r *stubQuoteRepo) NextQuoteNumber(_ context.Context) (string, error) {
	r.seq++
	return fmt.Sprintf("Q-2026-%06d", r.seq), nil
}

func (r *stubQuoteRepo) MarkExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (r *stubQuoteRepo) DB() *gorm.DB { return nil }

type stubTemplateRepo struct {
	templates map[uuid.UUID]*model.QuoteTemplate
}

func newStubTemplateRepo() *stubTemplateRepo {
	return &stubTemplateRepo{templates: make(map[uuid.UUID]*model.QuoteTemplate)}
}

func (r *stubTemplateRepo) Create(_ context.Context, tpl *model.QuoteTemplate) error {
	tpl.ID = uuid.New()
	r.templates[tpl.ID] = tpl
	return nil
}

func (r *stubTemplateRepo) FindByID(_ context.Context, id uuid.UUID) (*model.QuoteTemplate, error) {
	tpl, ok := r.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tpl, nil
}

func (r *stubTemplateRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.QuoteTemplate, error) {
	var out []model.QuoteTemplate
	for _, tpl := range r.templates {
		if tpl.UserID == userID {
			out = append(out, *tpl)
		}
	}
	return out, nil
}

func (r *stubTemplateRepo) Update(_ context.Context, tpl *model.QuoteTemplate) error {
	r.templates[tpl.ID] = tpl
	return nil
}

func (r *stubTemplateRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	tpl, ok := r.templates[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	tpl.Active = false
	return nil
}

// stubDefaults answers with empty defaults so the engine's hardcoded
// fallbacks apply — the values the tests assert against.
type stubDefaults struct{}

func (stubDefaults) Get(context.Context, uuid.UUID, string) (*dto.DefaultsResponse, error) {
	return nil, errors.New("no defaults stored for category")
}
func (stubDefaults) ListAll(context.Context, uuid.UUID) ([]dto.DefaultsResponse, error) {
	return nil, nil
}
func (stubDefaults) Upsert(context.Context, uuid.UUID, string, dto.UpsertDefaultsRequest) (*dto.DefaultsResponse, error) {
	return nil, nil
}
func (stubDefaults) Delete(context.Context, uuid.UUID, string) error { return nil }
func (stubDefaults) Effective(context.Context, uuid.UUID, string) pricing.Defaults {
	return pricing.Defaults{}
}
func (stubDefaults) EffectiveTiling(context.Context, uuid.UUID) pricing.TilingDefaults {
	return pricing.TilingDefaults{}
}

func newQuoteTestService() (QuoteService, *stubQuoteRepo, *stubTemplateRepo) {
	repo := newStubQuoteRepo()
	tplRepo := newStubTemplateRepo()
	svc := NewQuoteService(repo, tplRepo, NewPricingService(stubDefaults{}), nil)
	return svc, repo, tplRepo
}

func electricalLine(qty, cost float64) dto.QuoteLineInput {
	return dto.QuoteLineInput{
		CategoryKey: "electrical", Source: "catalog", Name: "Outlet install",
		Quantity: qty, ContractorCostPerUnit: cost,
	}
}

// ── Tests: Create ─────────────────────────────────────────────────────────────

func TestCreateQuote_ComputesTotalsServerSide(t *testing.T) {
	svc, _, _ := newQuoteTestService()
	userID := uuid.New()

	// electrical fallback markup is 40%: cost 2×100=200, price 2×140=280
	resp, err := svc.Create(context.Background(), userID, dto.CreateQuoteRequest{
		Items: []dto.QuoteLineInput{electricalLine(2, 100)},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Q-2026-000001", resp.QuoteNumber)
	assert.Equal(t, model.QuoteStatusDraft, resp.Status)
	assert.InDelta(t, 200, toFloat(resp.TotalCost), 0.001)
	assert.InDelta(t, 280, toFloat(resp.TotalPrice), 0.001)
	assert.InDelta(t, 80, toFloat(resp.ProfitAmount), 0.001)
}

func TestCreateQuote_ExtrasAndDiscount(t *testing.T) {
	svc, _, _ := newQuoteTestService()

	// subtotal 280 + extra 50 = 330; 10% discount → 297; cost 200 + 50 = 250
	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateQuoteRequest{
		Items:           []dto.QuoteLineInput{electricalLine(2, 100)},
		AdditionalCosts: []dto.AdditionalCostInput{{Name: "Waste removal", Cost: 50}},
		DiscountPercent: 10,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 297, toFloat(resp.TotalPrice), 0.001)
	assert.InDelta(t, 250, toFloat(resp.TotalCost), 0.001)
	assert.InDelta(t, 47, toFloat(resp.ProfitAmount), 0.001)
}

func TestCreateQuote_LineIDsAreUnique(t *testing.T) {
	svc, _, _ := newQuoteTestService()

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateQuoteRequest{
		Items: []dto.QuoteLineInput{
			electricalLine(1, 100),
			electricalLine(1, 200),
			electricalLine(1, 300),
		},
	})
	assert.NoError(t, err)
	assert.Len(t, resp.Items, 3)
	seen := make(map[string]bool)
	for _, li := range resp.Items {
		assert.False(t, seen[li.ID], "duplicate line id %s", li.ID)
		seen[li.ID] = true
	}
}

func TestCreateQuote_TilingLineUsesCompositeModel(t *testing.T) {
	svc, _, _ := newQuoteTestService()

	// material 100×10×1.1 = 1100; workdays 10/5 = 2; labor 2×1000 = 2000;
	// cost 3100; 30% markup → price 4030
	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateQuoteRequest{
		Items: []dto.QuoteLineInput{{
			CategoryKey: "tiling", Name: "Bathroom floor",
			Quantity: 10, MaterialCost: 100, WastagePercent: 10,
			LaborCostPerDay: 1000, DailyOutput: 5,
			ComplexityLevel: "none",
		}},
	})
	assert.NoError(t, err)
	li := resp.Items[0]
	assert.InDelta(t, 4030, li.TotalPrice, 0.001)
	assert.InDelta(t, 3100, li.TotalCost, 0.001)
	assert.InDelta(t, 2, li.WorkDuration, 0.001)
	assert.Equal(t, "none", li.ComplexityLevel)
	assert.InDelta(t, 2, toFloat(resp.WorkDays), 0.001)
}

// ── Tests: Ownership ──────────────────────────────────────────────────────────

func TestGetQuote_OtherUsersQuoteHidden(t *testing.T) {
	svc, _, _ := newQuoteTestService()
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, dto.CreateQuoteRequest{})
	assert.NoError(t, err)

	id, _ := uuid.Parse(created.ID)
	_, err = svc.GetByID(context.Background(), uuid.New(), id)
	assert.EqualError(t, err, "quote not found")
}

// ── Tests: Update / lifecycle ─────────────────────────────────────────────────

func TestUpdateQuote_DiscountTriggersRecompute(t *testing.T) {
	svc, _, _ := newQuoteTestService()
	userID := uuid.New()

	created, _ := svc.Create(context.Background(), userID, dto.CreateQuoteRequest{
		Items: []dto.QuoteLineInput{electricalLine(2, 100)},
	})
	id, _ := uuid.Parse(created.ID)

	discount := 50.0
	resp, err := svc.Update(context.Background(), userID, id, dto.UpdateQuoteRequest{
		DiscountPercent: &discount,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 140, toFloat(resp.TotalPrice), 0.001)
	// profit goes negative and is preserved, not clamped
	assert.InDelta(t, -60, toFloat(resp.ProfitAmount), 0.001)
}

func TestUpdateQuote_StatusLifecycle(t *testing.T) {
	svc, _, _ := newQuoteTestService()
	userID := uuid.New()

	created, _ := svc.Create(context.Background(), userID, dto.CreateQuoteRequest{})
	id, _ := uuid.Parse(created.ID)

	approved := model.QuoteStatusApproved
	_, err := svc.Update(context.Background(), userID, id, dto.UpdateQuoteRequest{Status: &approved})
	assert.EqualError(t, err, "only sent quotes can be approved")

	sent := model.QuoteStatusSent
	resp, err := svc.Update(context.Background(), userID, id, dto.UpdateQuoteRequest{Status: &sent})
	assert.NoError(t, err)
	assert.Equal(t, model.QuoteStatusSent, resp.Status)
	assert.NotNil(t, resp.SentAt)

	resp, err = svc.Update(context.Background(), userID, id, dto.UpdateQuoteRequest{Status: &approved})
	assert.NoError(t, err)
	assert.Equal(t, model.QuoteStatusApproved, resp.Status)
	assert.NotNil(t, resp.ApprovedAt)
}

func TestDeleteQuote_OnlyDrafts(t *testing.T) {
	svc, _, _ := newQuoteTestService()
	userID := uuid.New()

	created, _ := svc.Create(context.Background(), userID, dto.CreateQuoteRequest{})
	id, _ := uuid.Parse(created.ID)

	sent := model.QuoteStatusSent
	_, err := svc.Update(context.Background(), userID, id, dto.UpdateQuoteRequest{Status: &sent})
	assert.NoError(t, err)

	err = svc.Delete(context.Background(), userID, id)
	assert.EqualError(t, err, "only draft quotes can be deleted")
}

// ── Tests: Send ───────────────────────────────────────────────────────────────

func TestSendQuote_RequiresEmail(t *testing.T) {
	svc, _, _ := newQuoteTestService()
	userID := uuid.New()

	created, _ := svc.Create(context.Background(), userID, dto.CreateQuoteRequest{})
	id, _ := uuid.Parse(created.ID)

	_, err := svc.Send(context.Background(), userID, id, dto.SendQuoteRequest{})
	assert.EqualError(t, err, "quote has no client email")
}

func TestSendQuote_MarksSent(t *testing.T) {
	svc, _, _ := newQuoteTestService()
	userID := uuid.New()
	email := "client@example.com"

	created, _ := svc.Create(context.Background(), userID, dto.CreateQuoteRequest{ClientEmail: &email})
	id, _ := uuid.Parse(created.ID)

	resp, err := svc.Send(context.Background(), userID, id, dto.SendQuoteRequest{})
	assert.NoError(t, err)
	assert.Equal(t, model.QuoteStatusSent, resp.Status)
	assert.NotNil(t, resp.SentAt)
}

// ── Tests: Templates ──────────────────────────────────────────────────────────

func TestCreateFromTemplate_RestampsLineIDs(t *testing.T) {
	svc, _, tplRepo := newQuoteTestService()
	userID := uuid.New()

	tpl := &model.QuoteTemplate{
		UserID: userID, Name: "Standard bathroom", Active: true,
		Items: model.LineItems{{
			ID: "electrical_1", CategoryID: "electrical",
			Quantity: 2, UnitPrice: 140, TotalPrice: 280, TotalCost: 200, Profit: 80,
		}},
	}
	assert.NoError(t, tplRepo.Create(context.Background(), tpl))

	resp, err := svc.CreateFromTemplate(context.Background(), userID, tpl.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.QuoteStatusDraft, resp.Status)
	assert.Len(t, resp.Items, 1)
	assert.NotEqual(t, "electrical_1", resp.Items[0].ID)
	assert.InDelta(t, 280, toFloat(resp.TotalPrice), 0.001)
}

func TestCreateFromTemplate_OtherUsersTemplateHidden(t *testing.T) {
	svc, _, tplRepo := newQuoteTestService()

	tpl := &model.QuoteTemplate{UserID: uuid.New(), Name: "Private", Active: true}
	assert.NoError(t, tplRepo.Create(context.Background(), tpl))

	_, err := svc.CreateFromTemplate(context.Background(), uuid.New(), tpl.ID)
	assert.EqualError(t, err, "template not found")
}
