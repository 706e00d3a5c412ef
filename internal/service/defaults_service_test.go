package service

import (
	"context"
	"testing"

	"quotecraft/internal/dto"
	"quotecraft/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubDefaultsRepo struct {
	rows map[string]*model.PricingDefaults // userID + categoryKey
}

func newStubDefaultsRepo() *stubDefaultsRepo {
	return &stubDefaultsRepo{rows: make(map[string]*model.PricingDefaults)}
}

func defaultsKey(userID uuid.UUID, categoryKey string) string {
	return userID.String() + ":" + categoryKey
}

func (r *stubDefaultsRepo) FindByUserAndCategory(_ context.Context, userID uuid.UUID, categoryKey string) (*model.PricingDefaults, error) {
	d, ok := r.rows[defaultsKey(userID, categoryKey)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDefaultsRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.PricingDefaults, error) {
	var out []model.PricingDefaults
	for _, d := range r.rows {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubDefaultsRepo) Upsert(_ context.Context, d *model.PricingDefaults) error {
	r.rows[defaultsKey(d.UserID, d.CategoryKey)] = d
	return nil
}

func (r *stubDefaultsRepo) Delete(_ context.Context, userID uuid.UUID, categoryKey string) error {
	key := defaultsKey(userID, categoryKey)
	if _, ok := r.rows[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, key)
	return nil
}

func TestEffective_StoredRowWins(t *testing.T) {
	repo := newStubDefaultsRepo()
	userID := uuid.New()
	repo.rows[defaultsKey(userID, "plumbing")] = &model.PricingDefaults{
		UserID: userID, CategoryKey: "plumbing",
		ProfitPercent:   decimal.NewFromInt(25),
		LaborCostPerDay: decimal.NewFromInt(1200),
	}
	svc := NewDefaultsService(repo)

	d := svc.Effective(context.Background(), userID, "plumbing")
	assert.InDelta(t, 25, d.ProfitPercent, 0.001)
	assert.InDelta(t, 1200, d.LaborCostPerDay, 0.001)
}

func TestEffective_MissingRowYieldsZeroValues(t *testing.T) {
	svc := NewDefaultsService(newStubDefaultsRepo())

	// zero values let the engine's hardcoded fallbacks apply
	d := svc.Effective(context.Background(), uuid.New(), "electrical")
	assert.Zero(t, d.ProfitPercent)
	assert.Zero(t, d.LaborCostPerDay)
}

func TestEffectiveTiling_MapsAllKnobs(t *testing.T) {
	repo := newStubDefaultsRepo()
	userID := uuid.New()
	repo.rows[defaultsKey(userID, "tiling")] = &model.PricingDefaults{
		UserID: userID, CategoryKey: "tiling",
		ProfitPercent:     decimal.NewFromInt(35),
		LaborCostPerDay:   decimal.NewFromInt(1500),
		WastagePercent:    decimal.NewFromInt(12),
		DailyOutput:       decimal.NewFromInt(6),
		PanelWorkCapacity: decimal.NewFromInt(10),
		AdditionalCost:    decimal.NewFromInt(18),
		FixedProjectCost:  decimal.NewFromInt(500),
	}
	svc := NewDefaultsService(repo)

	d := svc.EffectiveTiling(context.Background(), userID)
	assert.InDelta(t, 35, d.ProfitPercent, 0.001)
	assert.InDelta(t, 1500, d.LaborCostPerDay, 0.001)
	assert.InDelta(t, 12, d.WastagePercent, 0.001)
	assert.InDelta(t, 6, d.DailyOutput, 0.001)
	assert.InDelta(t, 10, d.PanelWorkCapacity, 0.001)
	assert.InDelta(t, 18, d.AdditionalCost, 0.001)
	assert.InDelta(t, 500, d.FixedProjectCost, 0.001)
}

func TestUpsertThenDeleteDefaults(t *testing.T) {
	repo := newStubDefaultsRepo()
	userID := uuid.New()
	svc := NewDefaultsService(repo)

	_, err := svc.Upsert(context.Background(), userID, "paint", dto.UpsertDefaultsRequest{
		ProfitPercent: decimal.NewFromInt(22),
	})
	assert.NoError(t, err)

	got, err := svc.Get(context.Background(), userID, "paint")
	assert.NoError(t, err)
	assert.True(t, got.ProfitPercent.Equal(decimal.NewFromInt(22)))

	assert.NoError(t, svc.Delete(context.Background(), userID, "paint"))
	_, err = svc.Get(context.Background(), userID, "paint")
	assert.EqualError(t, err, "no defaults stored for category")
}
