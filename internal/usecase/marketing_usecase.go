package usecase

import (
	"context"
	"time"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
)

// Campaign budgets are stored in millions of toman.
const budgetUnit = 1_000_000

const metricsWindow = 30 * 24 * time.Hour

type MarketingUseCase struct {
	marketingRepo repository.MarketingRepository
	orderRepo     repository.OrderRepository
}

func NewMarketingUseCase(marketingRepo repository.MarketingRepository, orderRepo repository.OrderRepository) *MarketingUseCase {
	return &MarketingUseCase{
		marketingRepo: marketingRepo,
		orderRepo:     orderRepo,
	}
}

type UpdateMarketingInput struct {
	BannerContent   *entity.BannerContent
	Campaigns       []entity.Campaign
	UtmBuilder      *entity.UtmBuilder
	ExperimentSplit *int
}

// MetricPair carries a KPI for the current 30-day window next to the one
// before it, so the dashboard can render deltas.
type MetricPair struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

type MarketingMetrics struct {
	TotalOrders     int64      `json:"total_orders"`
	PaidOrders      int64      `json:"paid_orders"`
	DeliveredOrders int64      `json:"delivered_orders"`
	TotalRevenue    int64      `json:"total_revenue"`
	CurrentOrders   int64      `json:"current_orders"`
	PreviousOrders  int64      `json:"previous_orders"`
	CurrentRevenue  int64      `json:"current_revenue"`
	PreviousRevenue int64      `json:"previous_revenue"`
	TotalSpend      float64    `json:"total_spend"`
	CTR             MetricPair `json:"ctr"`
	CVR             MetricPair `json:"cvr"`
	CAC             MetricPair `json:"cac"`
	ROI             MetricPair `json:"roi"`
	AvgOrderValue   float64    `json:"avg_order_value"`
}

// GetSettings returns the singleton, creating it from the built-in defaults
// on first access.
func (uc *MarketingUseCase) GetSettings(ctx context.Context) (*entity.MarketingSettings, error) {
	settings, err := uc.marketingRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		fresh := defaultMarketingSettings
		now := time.Now()
		fresh.CreatedAt = now
		fresh.UpdatedAt = now
		if err := uc.marketingRepo.Save(ctx, &fresh); err != nil {
			return nil, err
		}
		return &fresh, nil
	}
	return settings, nil
}

// UpdateSettings overwrites only the sections present in the input.
func (uc *MarketingUseCase) UpdateSettings(ctx context.Context, input UpdateMarketingInput) (*entity.MarketingSettings, error) {
	settings, err := uc.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.BannerContent != nil {
		settings.BannerContent = *input.BannerContent
	}
	if input.Campaigns != nil {
		settings.Campaigns = input.Campaigns
	}
	if input.UtmBuilder != nil {
		settings.UtmBuilder = *input.UtmBuilder
	}
	if input.ExperimentSplit != nil {
		settings.ExperimentSplit = *input.ExperimentSplit
	}
	settings.UpdatedAt = time.Now()

	if err := uc.marketingRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// BuildMetrics derives the dashboard KPIs from order aggregates and the
// campaign budget list. Nothing here is persisted.
func (uc *MarketingUseCase) BuildMetrics(ctx context.Context, campaigns []entity.Campaign) (*MarketingMetrics, error) {
	now := time.Now()
	currentStart := now.Add(-metricsWindow)
	previousStart := currentStart.Add(-metricsWindow)

	metrics := &MarketingMetrics{}

	var err error
	if metrics.TotalOrders, err = uc.orderRepo.Count(ctx, repository.OrderCountFilter{}); err != nil {
		return nil, err
	}
	if metrics.PaidOrders, err = uc.orderRepo.Count(ctx, repository.OrderCountFilter{PaymentStatus: entity.PaymentStatusPaid}); err != nil {
		return nil, err
	}
	if metrics.DeliveredOrders, err = uc.orderRepo.Count(ctx, repository.OrderCountFilter{FulfillmentStatus: entity.FulfillmentStatusDelivered}); err != nil {
		return nil, err
	}
	if metrics.TotalRevenue, err = uc.orderRepo.SumTotalAmount(ctx, repository.OrderCountFilter{PaymentStatus: entity.PaymentStatusPaid}); err != nil {
		return nil, err
	}
	if metrics.CurrentOrders, err = uc.orderRepo.Count(ctx, repository.OrderCountFilter{CreatedFrom: &currentStart}); err != nil {
		return nil, err
	}
	if metrics.PreviousOrders, err = uc.orderRepo.Count(ctx, repository.OrderCountFilter{CreatedFrom: &previousStart, CreatedBefore: &currentStart}); err != nil {
		return nil, err
	}

	currentPaid, err := uc.orderRepo.Count(ctx, repository.OrderCountFilter{PaymentStatus: entity.PaymentStatusPaid, CreatedFrom: &currentStart})
	if err != nil {
		return nil, err
	}
	previousPaid, err := uc.orderRepo.Count(ctx, repository.OrderCountFilter{PaymentStatus: entity.PaymentStatusPaid, CreatedFrom: &previousStart, CreatedBefore: &currentStart})
	if err != nil {
		return nil, err
	}
	currentDelivered, err := uc.orderRepo.Count(ctx, repository.OrderCountFilter{FulfillmentStatus: entity.FulfillmentStatusDelivered, CreatedFrom: &currentStart})
	if err != nil {
		return nil, err
	}
	previousDelivered, err := uc.orderRepo.Count(ctx, repository.OrderCountFilter{FulfillmentStatus: entity.FulfillmentStatusDelivered, CreatedFrom: &previousStart, CreatedBefore: &currentStart})
	if err != nil {
		return nil, err
	}
	if metrics.CurrentRevenue, err = uc.orderRepo.SumTotalAmount(ctx, repository.OrderCountFilter{PaymentStatus: entity.PaymentStatusPaid, CreatedFrom: &currentStart}); err != nil {
		return nil, err
	}
	if metrics.PreviousRevenue, err = uc.orderRepo.SumTotalAmount(ctx, repository.OrderCountFilter{PaymentStatus: entity.PaymentStatusPaid, CreatedFrom: &previousStart, CreatedBefore: &currentStart}); err != nil {
		return nil, err
	}

	metrics.TotalSpend = sumCampaignSpend(campaigns)

	metrics.CTR = MetricPair{
		Current:  ratio(currentPaid, metrics.CurrentOrders),
		Previous: ratio(previousPaid, metrics.PreviousOrders),
	}
	metrics.CVR = MetricPair{
		Current:  ratio(currentDelivered, currentPaid),
		Previous: ratio(previousDelivered, previousPaid),
	}

	currentCac := 0.0
	if currentPaid > 0 {
		currentCac = metrics.TotalSpend / float64(currentPaid)
	}
	previousCac := currentCac
	if previousPaid > 0 {
		previousCac = metrics.TotalSpend / float64(previousPaid)
	}
	metrics.CAC = MetricPair{Current: currentCac, Previous: previousCac}

	currentRoi := 0.0
	previousRoi := 0.0
	if metrics.TotalSpend > 0 {
		currentRoi = float64(metrics.CurrentRevenue) / metrics.TotalSpend * 100
		previousRoi = float64(metrics.PreviousRevenue) / metrics.TotalSpend * 100
	}
	metrics.ROI = MetricPair{Current: currentRoi, Previous: previousRoi}

	if metrics.PaidOrders > 0 {
		metrics.AvgOrderValue = float64(metrics.TotalRevenue) / float64(metrics.PaidOrders)
	}

	return metrics, nil
}

func sumCampaignSpend(campaigns []entity.Campaign) float64 {
	var total float64
	for _, c := range campaigns {
		total += c.Budget
	}
	return total * budgetUnit
}

func ratio(numerator, denominator int64) float64 {
	if denominator <= 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}
