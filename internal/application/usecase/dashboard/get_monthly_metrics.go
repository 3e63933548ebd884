package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// GetMonthlyMetricsInput represents the month to fetch metrics for.
type GetMonthlyMetricsInput struct {
	Year  int
	Month time.Month
}

// GetMonthlyMetricsOutput represents a month's metrics.
type GetMonthlyMetricsOutput struct {
	Metrics     entity.MonthlyMetrics
	PeriodLabel string
}

// GetMonthlyMetricsUseCase fetches a single month's metrics. Nothing is
// stored.
type GetMonthlyMetricsUseCase struct {
	service adapter.FinanceService
}

// NewGetMonthlyMetricsUseCase creates a new GetMonthlyMetricsUseCase instance.
func NewGetMonthlyMetricsUseCase(service adapter.FinanceService) *GetMonthlyMetricsUseCase {
	return &GetMonthlyMetricsUseCase{
		service: service,
	}
}

// Execute returns the metrics, or nil when the fetch fails.
func (uc *GetMonthlyMetricsUseCase) Execute(ctx context.Context, input GetMonthlyMetricsInput) *GetMonthlyMetricsOutput {
	metrics, err := uc.service.GetMonthlyMetrics(context.WithoutCancel(ctx), input.Year, int(input.Month))
	if err != nil {
		slog.Warn("Failed to fetch monthly metrics",
			"year", input.Year,
			"month", int(input.Month),
			"error", err,
		)
		return nil
	}

	return &GetMonthlyMetricsOutput{
		Metrics:     metrics,
		PeriodLabel: GeneratePeriodLabel(input.Year, input.Month),
	}
}
