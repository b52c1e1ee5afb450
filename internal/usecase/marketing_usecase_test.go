package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameclub/internal/domain/entity"
)

func newMarketingFixture() (*MarketingUseCase, *memMarketingRepo, *memOrderRepo) {
	marketingRepo := &memMarketingRepo{}
	orderRepo := newMemOrderRepo()
	return NewMarketingUseCase(marketingRepo, orderRepo), marketingRepo, orderRepo
}

func TestGetSettingsCreatesDefaultsOnFirstRead(t *testing.T) {
	uc, repo, _ := newMarketingFixture()

	settings, err := uc.GetSettings(context.Background())
	require.NoError(t, err)

	assert.Len(t, settings.Campaigns, 3)
	assert.Equal(t, 60, settings.ExperimentSplit)
	assert.NotNil(t, repo.settings, "defaults must be persisted")

	again, err := uc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestUpdateSettingsOverwritesOnlyProvidedSections(t *testing.T) {
	uc, _, _ := newMarketingFixture()

	ctx := context.Background()
	original, err := uc.GetSettings(ctx)
	require.NoError(t, err)

	split := 25
	updated, err := uc.UpdateSettings(ctx, UpdateMarketingInput{ExperimentSplit: &split})
	require.NoError(t, err)

	assert.Equal(t, 25, updated.ExperimentSplit)
	assert.Equal(t, original.BannerContent, updated.BannerContent)
	assert.Equal(t, original.Campaigns, updated.Campaigns)
}

func TestBuildMetricsSpendAndWindows(t *testing.T) {
	uc, _, orderRepo := newMarketingFixture()
	ctx := context.Background()

	now := time.Now()
	seedOrder := func(paymentStatus, fulfillmentStatus string, amount int64, age time.Duration) {
		order := &entity.Order{
			OrderNumber:       "GC000000-0000",
			PaymentStatus:     paymentStatus,
			FulfillmentStatus: fulfillmentStatus,
			TotalAmount:       amount,
			CreatedAt:         now.Add(-age),
		}
		require.NoError(t, orderRepo.Create(ctx, order))
	}

	// Current window: 2 orders, 1 paid+delivered worth 2,000,000.
	seedOrder(entity.PaymentStatusPaid, entity.FulfillmentStatusDelivered, 2_000_000, 24*time.Hour)
	seedOrder(entity.PaymentStatusPending, entity.FulfillmentStatusPending, 1_500_000, 48*time.Hour)
	// Previous window: 1 paid order worth 1,000,000.
	seedOrder(entity.PaymentStatusPaid, entity.FulfillmentStatusPending, 1_000_000, 40*24*time.Hour)

	campaigns := []entity.Campaign{
		{ID: "a", Budget: 10},
		{ID: "b", Budget: 5},
	}

	metrics, err := uc.BuildMetrics(ctx, campaigns)
	require.NoError(t, err)

	assert.Equal(t, int64(3), metrics.TotalOrders)
	assert.Equal(t, int64(2), metrics.PaidOrders)
	assert.Equal(t, int64(1), metrics.DeliveredOrders)
	assert.Equal(t, int64(3_000_000), metrics.TotalRevenue)
	assert.Equal(t, int64(2), metrics.CurrentOrders)
	assert.Equal(t, int64(1), metrics.PreviousOrders)
	assert.Equal(t, int64(2_000_000), metrics.CurrentRevenue)
	assert.Equal(t, int64(1_000_000), metrics.PreviousRevenue)

	// Budgets are stored in millions of toman.
	assert.InDelta(t, 15_000_000, metrics.TotalSpend, 0.01)

	// 1 paid of 2 current orders; 1 paid of 1 previous order.
	assert.InDelta(t, 50, metrics.CTR.Current, 0.01)
	assert.InDelta(t, 100, metrics.CTR.Previous, 0.01)

	// 1 delivered of 1 currently paid; 0 delivered of 1 previously paid.
	assert.InDelta(t, 100, metrics.CVR.Current, 0.01)
	assert.InDelta(t, 0, metrics.CVR.Previous, 0.01)

	assert.InDelta(t, 15_000_000, metrics.CAC.Current, 0.01)
	assert.InDelta(t, float64(2_000_000)/15_000_000*100, metrics.ROI.Current, 0.01)
	assert.InDelta(t, 1_500_000, metrics.AvgOrderValue, 0.01)
}

func TestBuildMetricsWithNoSpendAndNoOrders(t *testing.T) {
	uc, _, _ := newMarketingFixture()

	metrics, err := uc.BuildMetrics(context.Background(), nil)
	require.NoError(t, err)

	assert.Zero(t, metrics.TotalSpend)
	assert.Zero(t, metrics.CTR.Current)
	assert.Zero(t, metrics.CAC.Current)
	assert.Zero(t, metrics.ROI.Current)
	assert.Zero(t, metrics.AvgOrderValue)
}

func TestHomeContentDefaultsAndPartialUpdate(t *testing.T) {
	contentRepo := &memContentRepo{}
	uc := NewHomeContentUseCase(contentRepo)

	ctx := context.Background()
	content, err := uc.GetContent(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, content.Hero.Title)
	assert.NotEmpty(t, content.TrustSignals)

	hero := content.Hero
	hero.Title = "New headline"
	updated, err := uc.UpdateContent(ctx, UpdateHomeContentInput{Hero: &hero})
	require.NoError(t, err)

	assert.Equal(t, "New headline", updated.Hero.Title)
	assert.Equal(t, content.Testimonials, updated.Testimonials)
	assert.Equal(t, content.Spotlights, updated.Spotlights)
}
