package dashboard

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/state"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// GetOverviewOutput represents the overview held after a fetch.
type GetOverviewOutput struct {
	Overview entity.Overview
	Fresh    bool // false when the fetch failed and a previous overview was kept
}

// GetOverviewUseCase fetches the service's pre-aggregated overview.
type GetOverviewUseCase struct {
	service adapter.FinanceService
	state   *state.State
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(service adapter.FinanceService, st *state.State) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		service: service,
		state:   st,
	}
}

// Execute stores the fetched overview. On failure the previous overview, if
// any, is returned unchanged; nil means no overview was ever loaded.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) *GetOverviewOutput {
	done := uc.state.Loading.Begin()
	defer done()

	overview, err := uc.service.GetOverview(context.WithoutCancel(ctx))
	if err != nil {
		slog.Warn("Failed to fetch overview, keeping previous state", "error", err)
		previous, ok := uc.state.ServerOverview()
		if !ok {
			return nil
		}
		return &GetOverviewOutput{Overview: previous}
	}

	uc.state.SetServerOverview(overview)
	return &GetOverviewOutput{
		Overview: overview,
		Fresh:    true,
	}
}
